package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

// Layout das datas exibidas nas páginas.
const DisplayLayout = "02/01/2006 15:04"

// DateLayout é o formato dos filtros de data vindos da query.
const DateLayout = "2006-01-02"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location cai para o fuso padrão e, sem base tzdata, para UTC.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// Formatter converte horários gravados para o fuso de exibição.
type Formatter struct {
	loc *time.Location
}

func NewFormatter(tz string) *Formatter {
	return &Formatter{loc: Location(tz)}
}

func (f *Formatter) Format(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(f.loc).Format(DisplayLayout)
}

// ParseDate lê um dia (YYYY-MM-DD) como meia-noite no fuso de exibição,
// o mesmo usado por Format.
func (f *Formatter) ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, f.loc)
}
