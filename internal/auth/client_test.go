package auth

import (
	"context"
	"net/url"
	"testing"

	pkgerrors "github.com/samgau/atelier-storefront/pkg/errors"
)

type recordingTransport struct {
	posts []string
	gets  []string
	err   error
}

func (r *recordingTransport) Get(ctx context.Context, path string, query url.Values, out any) error {
	r.gets = append(r.gets, path)
	return r.err
}

func (r *recordingTransport) Post(ctx context.Context, path string, body, out any) error {
	r.posts = append(r.posts, path)
	return r.err
}

func TestLoginValidatesBeforeDispatch(t *testing.T) {
	rt := &recordingTransport{}
	client, err := NewClient(rt)
	if err != nil {
		t.Fatalf("building client: %v", err)
	}

	err = client.Login(context.Background(), Credentials{Email: "not-an-email", Password: "pw"})
	if !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(rt.posts) != 0 {
		t.Fatalf("invalid payload must not reach the wire, got %v", rt.posts)
	}
}

func TestRegisterRequiresAllFields(t *testing.T) {
	rt := &recordingTransport{}
	client, _ := NewClient(rt)

	err := client.Register(context.Background(), RegisterInput{Email: "d@b.kz", Password: "pw"})
	if !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(rt.posts) != 0 {
		t.Fatalf("invalid payload must not reach the wire")
	}
}

func TestAuthEndpointPaths(t *testing.T) {
	rt := &recordingTransport{}
	client, _ := NewClient(rt)
	ctx := context.Background()

	if err := client.Login(ctx, Credentials{Email: "a@b.kz", Password: "pw"}); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := client.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if err := client.RefreshToken(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if _, err := client.Me(ctx); err != nil {
		t.Fatalf("me: %v", err)
	}

	wantPosts := []string{"/auth/login", "/auth/logout", "/auth/refresh"}
	if len(rt.posts) != len(wantPosts) {
		t.Fatalf("unexpected posts %v", rt.posts)
	}
	for i := range wantPosts {
		if rt.posts[i] != wantPosts[i] {
			t.Fatalf("post %d: got %q want %q", i, rt.posts[i], wantPosts[i])
		}
	}
	if len(rt.gets) != 1 || rt.gets[0] != "/auth/me" {
		t.Fatalf("unexpected gets %v", rt.gets)
	}
}
