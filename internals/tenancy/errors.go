// file: internals/tenancy/errors.go
package tenancy

import "errors"

var (
	// ErrMissingTenant: entity tenant-scoped mau dipersist tanpa school
	// yang bisa di-resolve. Fatal untuk operasi tulisnya, jangan di-default diam-diam.
	ErrMissingTenant = errors.New("tenancy: school tidak ter-resolve untuk entity tenant-scoped")

	// ErrAccessDenied: principal mencoba operasi di luar scope yang diberikan.
	// Di boundary dibedakan dari "record tidak ditemukan".
	ErrAccessDenied = errors.New("tenancy: akses ditolak")
)
