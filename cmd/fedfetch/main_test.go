package main_test

import (
	"bytes"
	"context"
	"testing"

	main "github.com/Sravan-create/fedreg/cmd/fedfetch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run(t *testing.T) {
	t.Run("no arguments returns error with guidance", func(t *testing.T) {
		m := main.NewMain()
		defer m.Close()

		err := m.Run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("help exits cleanly", func(t *testing.T) {
		m := main.NewMain()
		defer m.Close()

		stdout := &bytes.Buffer{}
		err := m.Run(context.Background(), []string{"--help"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "fetch")
	})

	t.Run("FEDREG_DB overrides default path", func(t *testing.T) {
		t.Setenv("FEDREG_DB", "/tmp/custom-fedreg.db")

		m := main.NewMain()

		assert.Equal(t, "/tmp/custom-fedreg.db", m.DBPath)
	})
}
