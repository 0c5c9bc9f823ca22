package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-bookshelf/internal/logger"
)

const hashHeader = "HashSHA256"

// withHashing checks and produces the HashSHA256 integrity header.
//
// A request body that carries the header must match it, otherwise the
// request is rejected with 400. Unsigned requests pass through. Every
// non-empty response body is signed.
func (h *Handler) withHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		if signature := r.Header.Get(hashHeader); signature != "" && r.Body != nil {
			// read bytes from body
			body, err := io.ReadAll(r.Body)
			if err != nil {
				log.Err(err).Str("func", "*Handler.withHashing").Msg("failed to read request body")
				http.Error(w, msgInternalError, http.StatusInternalServerError)
				return
			}
			// restore request body
			r.Body = io.NopCloser(bytes.NewReader(body))

			if !h.hasher.Verify(body, signature) {
				log.Err(ErrHashMismatch).Str("func", "*Handler.withHashing").
					Str("hash from request", signature).
					Msg("hashes are not equal")
				http.Error(w, msgIntegrityFailed, http.StatusBadRequest)
				return
			}
		}

		hw := &hashingResponseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(hw, r)

		if hw.body.Len() > 0 {
			w.Header().Set(hashHeader, h.hasher.SumHex(hw.body.Bytes()))
		}
		w.WriteHeader(hw.status)
		if _, err := w.Write(hw.body.Bytes()); err != nil {
			log.Err(err).Str("func", "*Handler.withHashing").Msg("failed to write response")
		}
	})
}

// hashingResponseWriter buffers the response so that its signature can be
// sent as a header before the body.
type hashingResponseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	body        bytes.Buffer
}

func (w *hashingResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.status = statusCode
}

func (w *hashingResponseWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.body.Write(b)
}
