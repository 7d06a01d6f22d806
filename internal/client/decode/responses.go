package decode

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/noclaf/internal/client/models"
	"github.com/dmitrijs2005/noclaf/internal/common"
	"github.com/tidwall/gjson"
)

var (
	errNotObject = errors.New("body is not a JSON object")
	errNotArray  = errors.New("body is not a JSON array")
)

type missingFieldError string

func (e missingFieldError) Error() string {
	return fmt.Sprintf("required field %q is missing", string(e))
}

// wireUser is the backend's user object.
type wireUser struct {
	ID                   *int64  `json:"id"`
	ProfileImage         *string `json:"profile_image"`
	LastLogin            string  `json:"last_login"`
	Email                string  `json:"email"`
	Name                 string  `json:"name"`
	Birthday             string  `json:"birthday"`
	IsAdmin              Flag    `json:"is_admin"`
	IsActive             Flag    `json:"is_active"`
	IsDeleted            Flag    `json:"is_deleted"`
	ForgotPasswordHash   *string `json:"forgot_password_hash"`
	ForgotPasswordExpire *string `json:"forgot_password_expire"`
	CreatedAt            string  `json:"created_at"`
	UpdatedAt            string  `json:"updated_at"`
}

func (u *wireUser) toModel() (models.Profile, error) {
	if u.ID == nil {
		return models.Profile{}, missingFieldError("id")
	}
	return models.Profile{
		ID:              *u.ID,
		Email:           u.Email,
		DisplayName:     u.Name,
		ProfileImageURL: u.ProfileImage,
		Birthday:        u.Birthday,
		IsAdmin:         bool(u.IsAdmin),
		IsActive:        bool(u.IsActive),
		IsDeleted:       bool(u.IsDeleted),
		RecoveryHash:    u.ForgotPasswordHash,
		RecoveryExpiry:  u.ForgotPasswordExpire,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
		LastLoginAt:     u.LastLogin,
	}, nil
}

// wirePost is one element of the feed array.
type wirePost struct {
	ID              *int64    `json:"id"`
	Image           string    `json:"image"`
	Title           string    `json:"title"`
	CreatedAt       string    `json:"created_at"`
	UpdatedAt       string    `json:"updated_at"`
	CreatedBy       *int64    `json:"created_by"`
	CreatedByObject *wireUser `json:"created_by_object"`
}

func (p *wirePost) toModel() (models.FeedItem, error) {
	switch {
	case p.ID == nil:
		return models.FeedItem{}, missingFieldError("id")
	case p.CreatedBy == nil:
		return models.FeedItem{}, missingFieldError("created_by")
	case p.CreatedByObject == nil:
		return models.FeedItem{}, missingFieldError("created_by_object")
	}
	author, err := p.CreatedByObject.toModel()
	if err != nil {
		return models.FeedItem{}, fmt.Errorf("created_by_object: %w", err)
	}
	return models.FeedItem{
		ID:        *p.ID,
		ImageURL:  p.Image,
		Title:     p.Title,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		AuthorID:  *p.CreatedBy,
		Author:    author,
	}, nil
}

func parseObject(endpoint string, data []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, &common.DecodeError{Endpoint: endpoint, Err: errNotObject}
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return gjson.Result{}, &common.DecodeError{Endpoint: endpoint, Err: errNotObject}
	}
	return root, nil
}

// Auth decodes the login response. A response without a non-empty token is
// never successful, whatever the server's success flag says.
func Auth(data []byte) (models.AuthResult, error) {
	root, err := parseObject(common.PathAuthUser, data)
	if err != nil {
		return models.AuthResult{}, err
	}

	token := OptionalString(root.Get("token"))
	if token != nil && *token == "" {
		token = nil
	}
	succeeded := Bool(root.Get("success")) && token != nil

	def := DefaultAuthFailureMessage
	if succeeded {
		def = DefaultAuthSuccessMessage
	}

	return models.AuthResult{
		Succeeded: succeeded,
		Message:   StringOr(root.Get("message"), def),
		Token:     token,
	}, nil
}

// Profile decodes a bare user object.
func Profile(data []byte) (models.Profile, error) {
	if _, err := parseObject(common.PathGetUser, data); err != nil {
		return models.Profile{}, err
	}
	return profileFromRaw(data)
}

func profileFromRaw(raw []byte) (models.Profile, error) {
	var u wireUser
	if err := json.Unmarshal(raw, &u); err != nil {
		return models.Profile{}, &common.DecodeError{Endpoint: common.PathGetUser, Err: err}
	}
	p, err := u.toModel()
	if err != nil {
		return models.Profile{}, &common.DecodeError{Endpoint: common.PathGetUser, Err: err}
	}
	return p, nil
}

// ProfileEnvelope accepts both the bare user object the backend currently
// sends and the wrapped {success, message, user} form. A bare object is a
// success by definition.
func ProfileEnvelope(data []byte) (models.ProfileEnvelope, error) {
	root, err := parseObject(common.PathGetUser, data)
	if err != nil {
		return models.ProfileEnvelope{}, err
	}

	if !root.Get("id").Exists() && (root.Get("user").Exists() || root.Get("success").Exists()) {
		env := models.ProfileEnvelope{
			Succeeded: Bool(root.Get("success")),
			Message:   StringOr(root.Get("message"), DefaultAuthFailureMessage),
		}
		if u := root.Get("user"); u.IsObject() {
			p, err := profileFromRaw([]byte(u.Raw))
			if err != nil {
				return models.ProfileEnvelope{}, err
			}
			env.Payload = &p
		}
		if env.Payload == nil {
			env.Succeeded = false
		}
		return env, nil
	}

	p, err := profileFromRaw(data)
	if err != nil {
		return models.ProfileEnvelope{}, err
	}
	return models.ProfileEnvelope{Succeeded: true, Message: DefaultProfileMessage, Payload: &p}, nil
}

// Feed decodes the bare array of posts.
func Feed(data []byte) ([]models.FeedItem, error) {
	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsArray() {
		return nil, &common.DecodeError{Endpoint: common.PathLoadPosts, Err: errNotArray}
	}

	var posts []wirePost
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, &common.DecodeError{Endpoint: common.PathLoadPosts, Err: err}
	}

	items := make([]models.FeedItem, 0, len(posts))
	for i := range posts {
		item, err := posts[i].toModel()
		if err != nil {
			return nil, &common.DecodeError{Endpoint: common.PathLoadPosts, Err: fmt.Errorf("post %d: %w", i, err)}
		}
		items = append(items, item)
	}
	return items, nil
}

// FeedEnvelope wraps Feed; the backend sends no success/message fields.
func FeedEnvelope(data []byte) (models.FeedEnvelope, error) {
	items, err := Feed(data)
	if err != nil {
		return models.FeedEnvelope{}, err
	}
	return models.FeedEnvelope{Succeeded: true, Message: DefaultMessage, Payload: items}, nil
}
