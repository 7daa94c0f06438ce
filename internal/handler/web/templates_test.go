package web

import (
	"testing"

	"github.com/MKhiriev/go-app-scaffold/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_AllPagesParse(t *testing.T) {
	r, err := newRenderer()
	require.NoError(t, err)

	for _, name := range []string{pageIndex, pageAbout, pageUsers, pageItems} {
		t.Run(name, func(t *testing.T) {
			html, err := r.render(name, models.PageData{Title: "T", Environment: "dev"})
			require.NoError(t, err)
			assert.Contains(t, string(html), "<!DOCTYPE html>")
		})
	}
}

func TestRenderer_UnknownPage(t *testing.T) {
	r, err := newRenderer()
	require.NoError(t, err)

	_, err = r.render("missing", models.PageData{})
	assert.ErrorIs(t, err, errUnknownPage)
}
