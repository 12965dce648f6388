package gymstats

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

var errIDNotPositive = errors.New("id has to be a positive number")

// PathID parses a positive integer path variable.
func PathID(r *http.Request, name string) (int, error) {
	idStr := mux.Vars(r)[name]
	if idStr == "" {
		return 0, errors.New("id empty")
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, errors.New("id NaN")
	}
	if id <= 0 {
		return 0, errIDNotPositive
	}
	return id, nil
}

// WriteError writes the status matching err. Unexpected errors are logged
// and their details kept from the client.
func WriteError(w http.ResponseWriter, err error, action string) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Errorf("%s: %s", action, err)
		http.Error(w, action+" failed", status)
		return
	}
	log.Tracef("%s: %s", action, err)
	http.Error(w, err.Error(), status)
}
