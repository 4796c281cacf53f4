package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Daskott/coastal-alert/server/auth"
	"github.com/Daskott/coastal-alert/server/auth/key"
	"github.com/Daskott/coastal-alert/server/models"
	"gorm.io/gorm"
)

const INVALID_CREDENTIALS_MSG = "email/password is invalid"

func signUp(rw http.ResponseWriter, r *http.Request) {
	user := models.User{}
	if !decodeAndValidate(rw, r, &user) {
		return
	}

	user.ID = 0
	user.Contacts = nil

	// The very first account administers the rest
	userExists, err := models.AtLeastOneUserExists()
	if err != nil {
		writeErrResponse(rw, err)
		return
	}
	if !userExists {
		user.IsAdmin = true
	}

	err = models.CreateUser(&user)
	if err != nil {
		writeErrResponse(rw, err)
		return
	}

	user.Password = ""
	json.NewEncoder(rw).Encode(ResponsePayload{Success: true, Data: user})
}

// logIn accepts a JSON body of email & password, or an OAuth2 style
// form with the email in 'username'.
func logIn(rw http.ResponseWriter, r *http.Request) {
	credentials := LoginRequest{}

	if isFormRequest(r) {
		err := r.ParseForm()
		if err != nil {
			writeResponse(rw, ResponsePayload{Errors: []string{err.Error()}}, http.StatusBadRequest)
			return
		}
		credentials.Email = r.PostFormValue("username")
		credentials.Password = r.PostFormValue("password")
	} else if !decodeJSON(rw, r, &credentials) {
		return
	}

	passwordHash, err := models.FindUserPassword(credentials.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		writeErrResponse(rw, err)
		return
	}

	if passwordHash == "" || !auth.CheckPasswordHash(credentials.Password, passwordHash) {
		writeResponse(rw, ResponsePayload{Errors: []string{INVALID_CREDENTIALS_MSG}}, http.StatusUnauthorized)
		return
	}

	user, err := models.FindUserBy("email", strings.ToLower(strings.TrimSpace(credentials.Email)))
	if err != nil {
		writeErrResponse(rw, err)
		return
	}

	if !user.IsActive {
		writeResponse(rw, ResponsePayload{Errors: []string{"account is inactive"}}, http.StatusUnauthorized)
		return
	}

	ttl := time.Duration(serverConfig.Coastal.TokenTTLMinutes) * time.Minute
	token, err := auth.EncodeJWT(auth.NewTokenClaims(user.ID, user.Name, user.Email, user.IsAdmin, ttl), authKeyPair)
	if err != nil {
		writeErrResponse(rw, err)
		return
	}

	json.NewEncoder(rw).Encode(ResponsePayload{
		Success: true,
		Data:    LoginResponse{AccessToken: token, TokenType: auth.TOKEN_TYPE, User: user},
	})
}

func currentUser(rw http.ResponseWriter, r *http.Request) {
	decodedJWT := r.Context().Value(RequestContextKey("decodedJWT")).(DecodedJWT)

	user, err := models.FindUserBy("id", decodedJWT.Claims.Subject)
	if err != nil {
		writeErrResponse(rw, err)
		return
	}

	json.NewEncoder(rw).Encode(ResponsePayload{Success: true, Data: user})
}

func jwks(rw http.ResponseWriter, r *http.Request) {
	keyPairJWK, err := authKeyPair.JWK()
	if err != nil {
		writeErrResponse(rw, err)
		return
	}

	json.NewEncoder(rw).Encode(key.ExportJWKAsJWKS(keyPairJWK))
}
