package httpx

import (
	"errors"
	"net/http"

	"github.com/antarin/antarin/internal/shared"
)

// User-facing messages per sentinel error. Unknown-user and wrong-password
// both map to ErrInvalidCredentials and therefore share one message.
var messages = map[error]string{
	shared.ErrInvalidInput:       "Data yang dikirim tidak lengkap",
	shared.ErrInvalidCredentials: "Username atau password salah",
	shared.ErrAccountInactive:    "Akun Anda tidak aktif. Hubungi administrator.",
	shared.ErrTokenMissing:       "Token tidak ditemukan",
	shared.ErrTokenInvalid:       "Token tidak valid atau sudah kadaluarsa",
	shared.ErrTokenExpired:       "Token tidak valid atau sudah kadaluarsa",
	shared.ErrForbidden:          "Akses ditolak",
	shared.ErrNotFound:           "Data tidak ditemukan",
	shared.ErrNoChanges:          "Tidak ada data yang diupdate",
}

// genericMessage hides store and infrastructure failures from clients.
const genericMessage = "Terjadi kesalahan server"

// RespondError maps a domain error onto its HTTP status and envelope.
// Errors outside the taxonomy become a generic 500.
func RespondError(w http.ResponseWriter, err error) {
	Fail(w, StatusFor(err), UserSafeMessage(err))
}

// StatusFor returns the HTTP status code for a domain error.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, shared.ErrInvalidInput), errors.Is(err, shared.ErrNoChanges):
		return http.StatusBadRequest
	case errors.Is(err, shared.ErrInvalidCredentials),
		errors.Is(err, shared.ErrTokenInvalid),
		errors.Is(err, shared.ErrTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, shared.ErrAccountInactive),
		errors.Is(err, shared.ErrTokenMissing),
		errors.Is(err, shared.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, shared.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// UserSafeMessage returns the client-facing message for a domain error.
func UserSafeMessage(err error) string {
	for sentinel, msg := range messages {
		if errors.Is(err, sentinel) {
			return msg
		}
	}
	return genericMessage
}
