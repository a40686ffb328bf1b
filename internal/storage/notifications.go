package storage

import (
	"net/http"
	"net/url"
)

// GetNotifications applies every filter as an equality predicate.
func (c *Client) GetNotifications(filters map[string]string) ([]Row, error) {
	query := url.Values{"select": {"*"}}
	for key, value := range filters {
		query.Set(key, "eq."+value)
	}
	return c.do(http.MethodGet, "notifications", query, nil)
}

func (c *Client) InsertNotification(data Row) ([]Row, error) {
	return c.do(http.MethodPost, "notifications", nil, data)
}

func (c *Client) MarkNotificationRead(id string) ([]Row, error) {
	return c.do(http.MethodPatch, "notifications", url.Values{"id": {"eq." + id}}, Row{"is_read": true})
}

func (c *Client) MarkAllNotificationsRead() ([]Row, error) {
	return c.do(http.MethodPatch, "notifications", nil, Row{"is_read": true})
}

func (c *Client) DeleteNotification(id string) ([]Row, error) {
	return c.do(http.MethodDelete, "notifications", url.Values{"id": {"eq." + id}}, nil)
}

func (c *Client) DeleteAllNotifications() ([]Row, error) {
	return c.do(http.MethodDelete, "notifications", nil, nil)
}
