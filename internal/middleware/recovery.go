package middleware

import (
	"net/http"
)

func Recovery(faults *FaultReporter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					faults.Report(w, r, rec)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
