// file: internals/features/schools/model/school_model_test.go
package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateVerificationCode(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		code := GenerateVerificationCode()
		assert.Len(t, code, 12)
		assert.Equal(t, strings.ToUpper(code), code)
		seen[code] = struct{}{}
	}
	// 100 kali generate harus unik semua (praktis mustahil tabrakan)
	assert.Len(t, seen, 100)
}

func TestIsValidSchoolStatus(t *testing.T) {
	assert.True(t, IsValidSchoolStatus(SchoolStatusActive))
	assert.True(t, IsValidSchoolStatus(SchoolStatusInactive))
	assert.True(t, IsValidSchoolStatus(SchoolStatusSuspended))
	assert.False(t, IsValidSchoolStatus("deleted"))
	assert.False(t, IsValidSchoolStatus(""))
}
