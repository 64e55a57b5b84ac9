package validators

import (
	"context"
	"net"
	"net/mail"
	"strings"
)

// IsEmailSyntaxValid aceita apenas o endereço puro, sem nome de exibição.
func IsEmailSyntaxValid(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	at := strings.LastIndex(email, "@")
	return at > 0 && strings.Contains(email[at+1:], ".")
}

// Resolver é o subconjunto de net.Resolver usado na checagem de domínio.
type Resolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

// IsEmailDomainValid confere se o domínio tem MX ou, na falta dele, A/AAAA.
func IsEmailDomainValid(ctx context.Context, r Resolver, email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := r.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := r.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}

// EmailChecker junta as duas validações; a consulta DNS é opcional
// (CHECK_EMAIL_DOMAIN).
type EmailChecker struct {
	CheckDomain bool
	Resolver    Resolver
}

func NewEmailChecker(checkDomain bool) *EmailChecker {
	return &EmailChecker{CheckDomain: checkDomain, Resolver: net.DefaultResolver}
}

func (e *EmailChecker) Valid(ctx context.Context, email string) bool {
	if !IsEmailSyntaxValid(email) {
		return false
	}
	if !e.CheckDomain {
		return true
	}
	return IsEmailDomainValid(ctx, e.Resolver, email)
}
