package httpadapter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientIPResolver(t *testing.T) {
	ips, err := NewClientIPResolver([]string{"10.0.0.0/8", " 192.0.2.1 ", ""})
	require.NoError(t, err)

	cases := []struct {
		name   string
		remote string
		xff    []string
		want   string
	}{
		{"untrusted peer ignores header", "198.51.100.4:5555", []string{"203.0.113.9"}, "198.51.100.4"},
		{"trusted peer without header", "10.1.1.1:443", nil, "10.1.1.1"},
		{"rightmost untrusted hop", "10.1.1.1:443", []string{"203.0.113.9, 198.51.100.4"}, "198.51.100.4"},
		{"skips trusted hops", "10.1.1.1:443", []string{"198.51.100.4, 192.0.2.1, 10.2.2.2"}, "198.51.100.4"},
		{"multiple header lines", "10.1.1.1:443", []string{"203.0.113.9", "198.51.100.4"}, "198.51.100.4"},
		{"garbage hop stops the walk", "10.1.1.1:443", []string{"198.51.100.4, not-an-ip, 10.2.2.2"}, "10.2.2.2"},
		{"all hops trusted", "10.1.1.1:443", []string{"10.3.3.3, 10.2.2.2"}, "10.3.3.3"},
		{"mapped peer", "[::ffff:198.51.100.4]:80", nil, "198.51.100.4"},
		{"ipv6 peer", "[2001:db8::1]:80", []string{"203.0.113.9"}, "2001:db8::1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remote
			for _, v := range tc.xff {
				req.Header.Add("X-Forwarded-For", v)
			}
			assert.Equal(t, tc.want, ips.Resolve(req))
		})
	}
}

func TestNilClientIPResolverUsesRemoteAddr(t *testing.T) {
	var ips *ClientIPResolver
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "198.51.100.4:5555"
	req.Header.Set("X-Forwarded-For", "203.0.113.9")

	assert.Equal(t, "198.51.100.4", ips.Resolve(req))
}

func TestNewClientIPResolverRejectsGarbage(t *testing.T) {
	_, err := NewClientIPResolver([]string{"10.0.0.0/33"})
	assert.Error(t, err)

	_, err = NewClientIPResolver([]string{"proxy.internal"})
	assert.Error(t, err)
}
