package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/dmitrijs2005/noclaf/internal/client/models"
	"github.com/dmitrijs2005/noclaf/internal/common"
	"github.com/dmitrijs2005/noclaf/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	session models.Session

	result  models.AuthResult
	authErr error
	gotID   string
	gotPass string

	logoutCalls int
	logoutErr   error
}

func (f *fakeAuth) Authenticate(_ context.Context, id, secret string) (models.AuthResult, error) {
	f.gotID, f.gotPass = id, secret
	if f.authErr != nil {
		return models.AuthResult{}, f.authErr
	}
	if f.result.Succeeded {
		f.session = models.Session{Token: "tok", DisplayName: id, IsAuthenticated: true}
	}
	return f.result, nil
}

func (f *fakeAuth) CurrentSession() models.Session { return f.session }

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalls++
	if f.logoutErr != nil {
		return f.logoutErr
	}
	f.session = models.Session{}
	return nil
}

func stubInputs(t *testing.T, email string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return email, nil }
	getPassword = func(_ *bufio.Reader, _ io.Writer) ([]byte, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func newTestApp(auth *fakeAuth, res *fakeResources) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	if res == nil {
		res = &fakeResources{}
	}
	return &App{
		authService:     auth,
		resourceService: res,
		log:             logging.Discard(),
		reader:          rdr(""),
		out:             &out,
	}, &out
}

func TestLogin_Success(t *testing.T) {
	printed := capturePrintln(t)
	pw := []byte("secret")
	stubInputs(t, "Foo@Bar.com", pw)

	f := &fakeAuth{result: models.AuthResult{Succeeded: true, Message: "Bem-vindo"}}
	a, _ := newTestApp(f, nil)

	require.NoError(t, a.Login(context.Background()))
	assert.Equal(t, "Foo@Bar.com", f.gotID)
	assert.Equal(t, "secret", f.gotPass)
	assert.True(t, a.isLoggedIn())
	assert.Contains(t, *printed, "Bem-vindo")
	assert.Equal(t, make([]byte, len(pw)), pw, "password must be wiped")
}

func TestLogin_RejectedByServerMessage(t *testing.T) {
	printed := capturePrintln(t)
	stubInputs(t, "a@b.c", []byte("x"))

	f := &fakeAuth{result: models.AuthResult{Succeeded: false, Message: "E-mail ou Senha inválidos."}}
	a, _ := newTestApp(f, nil)

	require.NoError(t, a.Login(context.Background()))
	assert.False(t, a.isLoggedIn())
	assert.Equal(t, []string{"E-mail ou Senha inválidos."}, *printed)
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"validation", common.ErrValidation, common.MsgValidation},
		{"offline", &common.TransportError{Kind: common.ErrNoConnectivity}, common.MsgNoConnectivity},
		{"timeout", &common.TransportError{Kind: common.ErrTimeout}, common.MsgTimeout},
		{"401 on login", &common.StatusError{StatusCode: 401}, common.MsgInvalidLogin},
		{"500 on login", &common.StatusError{StatusCode: 500}, common.MsgInvalidLogin},
		{"decode", &common.DecodeError{Endpoint: common.PathAuthUser, Err: errors.New("eof")}, common.MsgDecode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			printed := capturePrintln(t)
			stubInputs(t, "a@b.c", []byte("x"))

			a, _ := newTestApp(&fakeAuth{authErr: tt.err}, nil)
			err := a.Login(context.Background())
			require.ErrorIs(t, err, tt.err)
			assert.Equal(t, []string{tt.want}, *printed)
		})
	}
}

func TestLogin_InputError(t *testing.T) {
	capturePrintln(t)
	origST := getSimpleText
	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) { return "", io.EOF }
	t.Cleanup(func() { getSimpleText = origST })

	f := &fakeAuth{}
	a, _ := newTestApp(f, nil)
	require.ErrorIs(t, a.Login(context.Background()), io.EOF)
	assert.Empty(t, f.gotID, "service must not be called")
}

func TestLogout(t *testing.T) {
	printed := capturePrintln(t)
	f := &fakeAuth{session: models.Session{Token: "t", DisplayName: "n", IsAuthenticated: true}}
	a, _ := newTestApp(f, nil)

	require.NoError(t, a.Logout(context.Background()))
	require.NoError(t, a.Logout(context.Background()))
	assert.Equal(t, 2, f.logoutCalls)
	assert.False(t, a.isLoggedIn())
	assert.Equal(t, []string{"Logged out", "Logged out"}, *printed)
}

func TestLogout_ErrorPropagates(t *testing.T) {
	capturePrintln(t)
	a, _ := newTestApp(&fakeAuth{logoutErr: errors.New("locked")}, nil)
	require.Error(t, a.Logout(context.Background()))
}

func TestStatusAndPrompt(t *testing.T) {
	printed := capturePrintln(t)
	f := &fakeAuth{}
	a, _ := newTestApp(f, nil)

	require.NoError(t, a.Status(context.Background()))
	assert.Equal(t, "", a.getStatus())

	f.session = models.Session{Token: "t", DisplayName: "foo@bar.com", IsAuthenticated: true}
	require.NoError(t, a.Status(context.Background()))
	assert.Equal(t, "(foo@bar.com)", a.getStatus())

	f.session.DisplayName = ""
	assert.Equal(t, "(logged in)", a.getStatus())

	assert.Equal(t, []string{"Not logged in", "Logged in as foo@bar.com"}, *printed)
}
