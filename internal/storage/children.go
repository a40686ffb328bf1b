package storage

import (
	"net/http"
	"net/url"
	"strconv"
)

func (c *Client) GetChildren() ([]Row, error) {
	return c.do(http.MethodGet, "children", url.Values{"select": {"*"}}, nil)
}

// SampleChildren is the connectivity probe behind /api/supabase-status.
func (c *Client) SampleChildren(limit int) ([]Row, error) {
	query := url.Values{"select": {"*"}, "limit": {strconv.Itoa(limit)}}
	return c.do(http.MethodGet, "children", query, nil)
}

func (c *Client) InsertChild(data Row) ([]Row, error) {
	return c.do(http.MethodPost, "children", nil, data)
}

func (c *Client) UpdateChild(id string, data Row) ([]Row, error) {
	return c.do(http.MethodPatch, "children", url.Values{"id": {"eq." + id}}, data)
}

func (c *Client) DeleteChild(id string) ([]Row, error) {
	return c.do(http.MethodDelete, "children", url.Values{"id": {"eq." + id}}, nil)
}

// Doctors live in the shared profiles table, keyed by role.
func (c *Client) GetDoctors() ([]Row, error) {
	query := url.Values{"select": {"*"}, "role": {"eq.doctor"}}
	return c.do(http.MethodGet, "profiles", query, nil)
}
