// Package identity models the throwaway reporter accounts used by the flow.
package identity

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Placeholder profile values sent on registration. The backend requires the
// full profile schema even for accounts that only exist to file one report,
// so every reporter carries the same fixed filler data.
const (
	PlaceholderBiografia       = "Cuenta de prueba para verificacion de moderacion"
	PlaceholderFechaNacimiento = "2000-01-01"
	PlaceholderCiudad          = "Managua"
	PlaceholderFoto            = ""
)

// Identity is one reporter account: profile fields for registration plus
// the credentials used to log in. Identities are transient, built once per
// run and never persisted.
type Identity struct {
	Carnet          string `yaml:"carnet"`
	Nombre          string `yaml:"nombre"`
	Biografia       string `yaml:"biografia"`
	FechaNacimiento string `yaml:"fecha_nacimiento"`
	Ciudad          string `yaml:"ciudad"`
	Foto            string `yaml:"foto"`
	Email           string `yaml:"email"`
	Password        string `yaml:"password"`
}

// Defaults builds one identity per email, in declaration order, with fixed
// placeholder profile fields. All reporters share the given password.
func Defaults(emails []string, password string) []Identity {
	identities := make([]Identity, 0, len(emails))
	for i, email := range emails {
		identities = append(identities, Identity{
			Carnet:          fmt.Sprintf("900%04d", i+1),
			Nombre:          fmt.Sprintf("Reporter %d", i+1),
			Biografia:       PlaceholderBiografia,
			FechaNacimiento: PlaceholderFechaNacimiento,
			Ciudad:          PlaceholderCiudad,
			Foto:            PlaceholderFoto,
			Email:           email,
			Password:        password,
		})
	}
	return identities
}

// Generate mints n fresh reporters with unique emails and carnets. Repeated
// runs against the same backend otherwise trip duplicate-account errors in
// the registration phase; generated identities keep every run clean.
func Generate(n int, domain, password string) []Identity {
	identities := make([]Identity, 0, n)
	for i := 0; i < n; i++ {
		suffix := strings.Split(uuid.NewString(), "-")[0]
		identities = append(identities, Identity{
			Carnet:          fmt.Sprintf("910%04d", i+1),
			Nombre:          fmt.Sprintf("Reporter %s", suffix),
			Biografia:       PlaceholderBiografia,
			FechaNacimiento: PlaceholderFechaNacimiento,
			Ciudad:          PlaceholderCiudad,
			Foto:            PlaceholderFoto,
			Email:           fmt.Sprintf("reporter-%s@%s", suffix, domain),
			Password:        password,
		})
	}
	return identities
}
