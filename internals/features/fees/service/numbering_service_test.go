// file: internals/features/fees/service/numbering_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextSequence(t *testing.T) {
	// belum ada nomor tahun ini
	assert.Equal(t, 1, nextSequence("", "INV-2026-"))

	// lanjut dari nomor terakhir
	assert.Equal(t, 43, nextSequence("INV-2026-0042", "INV-2026-"))
	assert.Equal(t, 2, nextSequence("RCP-2026-0001", "RCP-2026-"))

	// lewat 4 digit tetap jalan
	assert.Equal(t, 10000, nextSequence("INV-2026-9999", "INV-2026-"))
	assert.Equal(t, 10001, nextSequence("INV-2026-10000", "INV-2026-"))

	// nomor tahun lain tidak ikut dihitung
	assert.Equal(t, 1, nextSequence("INV-2025-0042", "INV-2026-"))

	// suffix rusak tidak bikin panic, mulai dari 1
	assert.Equal(t, 1, nextSequence("INV-2026-xxxx", "INV-2026-"))
	assert.Equal(t, 1, nextSequence("INV-2026--001", "INV-2026-"))
}
