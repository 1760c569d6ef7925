package configs

import "strings"

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Store selects the persistence backend for users and campaign runs. The
// memory backend loses everything on restart.
type Store struct {
	Driver string `env:"DRIVER" envDefault:"memory"`
}

// Backend normalises Driver. Unknown values fall back to StoreMemory.
func (s Store) Backend() string {
	if strings.EqualFold(s.Driver, StorePostgres) {
		return StorePostgres
	}
	return StoreMemory
}
