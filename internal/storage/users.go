package storage

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"StuntingCare_Backend/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

func (c *Client) GetUserByEmail(email string) (models.User, error) {
	var user models.User

	query := url.Values{"select": {"*"}, "email": {"eq." + email}, "limit": {"1"}}
	rows, err := c.do(http.MethodGet, "users", query, nil)
	if err != nil {
		return user, err
	}
	if len(rows) == 0 {
		return user, ErrUserNotFound
	}

	data, err := json.Marshal(rows[0])
	if err != nil {
		return user, err
	}
	if err := json.Unmarshal(data, &user); err != nil {
		return user, err
	}
	return user, nil
}
