// Package identity supplies the human-readable strings that decorate
// generated records. The generation core treats every value as an opaque
// non-empty string — nothing downstream depends on their content, only on
// their shape.
package identity

import "github.com/brianvoe/gofakeit/v6"

// Decorator produces decorative identity strings on demand.
type Decorator interface {
	Name() string    // a human full name
	Email() string   // an email-like string
	Phone() string   // a phone-like string
	Company() string // a company-like string
	IPv4() string    // an IPv4-like string
}

// Faker is the gofakeit-backed Decorator. It carries its own seeded source
// so identity strings are reproducible independently of the numeric RNG.
type Faker struct {
	f *gofakeit.Faker
}

// NewFaker creates a Faker seeded with the given value. The same seed yields
// the same sequence of identity strings.
func NewFaker(seed int64) *Faker {
	return &Faker{f: gofakeit.New(seed)}
}

func (d *Faker) Name() string    { return d.f.Name() }
func (d *Faker) Email() string   { return d.f.Email() }
func (d *Faker) Phone() string   { return d.f.Phone() }
func (d *Faker) Company() string { return d.f.Company() }
func (d *Faker) IPv4() string    { return d.f.IPv4Address() }
