package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnString(t *testing.T) {
	assert.Equal(t,
		"postgres://postgres@localhost:5432/fitstats",
		ConnString(NewDBPoolParams{DBHost: "localhost", DBName: "fitstats"}),
	)
	assert.Equal(t,
		"postgres://fit:s3cret@db:15432/fitstats",
		ConnString(NewDBPoolParams{
			DBHost:     "db",
			DBPort:     "15432",
			DBName:     "fitstats",
			DBUser:     "fit",
			DBPassword: "s3cret",
		}),
	)
}
