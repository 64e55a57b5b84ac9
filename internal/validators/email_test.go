package validators

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeResolver struct {
	mx  map[string]bool
	ips map[string]bool
}

func (f fakeResolver) LookupMX(_ context.Context, name string) ([]*net.MX, error) {
	if f.mx[name] {
		return []*net.MX{{Host: "mx." + name, Pref: 10}}, nil
	}
	return nil, errors.New("no such host")
}

func (f fakeResolver) LookupIPAddr(_ context.Context, host string) ([]net.IPAddr, error) {
	if f.ips[host] {
		return []net.IPAddr{{IP: net.IPv4(10, 0, 0, 1)}}, nil
	}
	return nil, errors.New("no such host")
}

func TestIsEmailSyntaxValid(t *testing.T) {
	cases := map[string]bool{
		"ana@email.com":          true,
		"ana.silva@loja.com.br":  true,
		"ana":                    false,
		"ana@":                   false,
		"@email.com":             false,
		"ana@localhost":          false,
		"Ana <ana@email.com>":    false,
		"ana@email.com, b@c.com": false,
	}
	for email, want := range cases {
		assert.Equal(t, want, IsEmailSyntaxValid(email), email)
	}
}

func TestIsEmailDomainValid(t *testing.T) {
	r := fakeResolver{
		mx:  map[string]bool{"comemail.com": true},
		ips: map[string]bool{"soip.com": true},
	}
	ctx := context.Background()

	assert.True(t, IsEmailDomainValid(ctx, r, "a@comemail.com"))
	assert.True(t, IsEmailDomainValid(ctx, r, "a@soip.com"))
	assert.False(t, IsEmailDomainValid(ctx, r, "a@naoexiste.com"))
	assert.False(t, IsEmailDomainValid(ctx, r, "a@"))
}

func TestEmailCheckerDomainOptional(t *testing.T) {
	ctx := context.Background()

	off := &EmailChecker{Resolver: fakeResolver{}}
	assert.True(t, off.Valid(ctx, "a@naoexiste.com"))
	assert.False(t, off.Valid(ctx, "invalido"))

	on := &EmailChecker{CheckDomain: true, Resolver: fakeResolver{mx: map[string]bool{"ok.com": true}}}
	assert.True(t, on.Valid(ctx, "a@ok.com"))
	assert.False(t, on.Valid(ctx, "a@naoexiste.com"))
}
