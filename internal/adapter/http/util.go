package adapthttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"weighttrack/internal/app"
	"weighttrack/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]any{"error": err.Error()})
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// writeServiceError maps application errors to status codes: validation
// failures are 400, missing settings or records 404, anything else 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case app.IsValidation(err):
		var fields []fieldError
		for _, ve := range app.ValidationErrors(err) {
			fields = append(fields, fieldError{Field: ve.Field, Message: ve.Msg})
		}
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error(), "fields": fields})
	case errors.Is(err, app.ErrSettingsNotFound), errors.Is(err, domain.ErrRecordNotFound):
		writeError(w, http.StatusNotFound, err)
	default:
		log.WithField("request_id", w.Header().Get(requestIDHeader)).
			Errorf("%s %s: %s", r.Method, r.URL.Path, err)
		writeError(w, http.StatusInternalServerError, errors.New("internal error"))
	}
}

func parseJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

func intQuery(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// flexDate accepts RFC 3339 timestamps and bare YYYY-MM-DD dates. Bare
// dates are midnight in the server's local zone.
type flexDate struct {
	time.Time
}

func (d *flexDate) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.ParseInLocation(time.DateOnly, s, time.Local)
	if err != nil {
		return fmt.Errorf("date %q: want RFC 3339 or YYYY-MM-DD", s)
	}
	d.Time = t
	return nil
}

func (d *flexDate) ptr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func withNoCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

func spaFromDisk(dir string) http.Handler {
	fileServer := http.FileServer(http.Dir(dir))
	indexPath := path.Join(dir, "index.html")
	chartsPath := path.Join(dir, "charts.html")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqPath := path.Clean(r.URL.Path)
		if reqPath == "/" {
			http.ServeFile(w, r, indexPath)
			return
		}
		if reqPath == "/charts" {
			http.ServeFile(w, r, chartsPath)
			return
		}

		staticPath := path.Join(dir, reqPath)
		if _, err := os.Stat(staticPath); err == nil {
			fileServer.ServeHTTP(w, r)
			return
		}

		http.ServeFile(w, r, indexPath)
	})
}
