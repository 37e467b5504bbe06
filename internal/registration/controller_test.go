package registration

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/money-guard/internal/domain"
)

func filledController(t *testing.T, r Registrar, n Notifier, v Values) *Controller {
	t.Helper()

	c := NewController(r, n)

	_, err := c.Fill(v)
	require.NoError(t, err)

	return c
}

func TestNewController(t *testing.T) {
	c := NewController(nil, nil)

	require.Equal(t, Editing, c.State())
	require.Equal(t, Values{}, c.Values())
	require.Empty(t, c.Errors())
	require.False(t, c.SubmitDisabled())
}

func TestChange(t *testing.T) {
	c := NewController(nil, nil)

	errs, err := c.Change(FieldUsername, "a")
	require.NoError(t, err)
	require.Equal(t, "Must be at least 2 characters", errs[FieldUsername])

	errs, err = c.Change(FieldUsername, "alice")
	require.NoError(t, err)
	require.NotContains(t, errs, FieldUsername)

	_, err = c.Change(FieldPassword, "Secret12")
	require.NoError(t, err)
	require.True(t, c.SubmitDisabled())

	_, err = c.Change(FieldPassword2, "Secret12")
	require.NoError(t, err)
	require.False(t, c.SubmitDisabled())

	_, err = c.Change("fullname", "Alice")
	require.ErrorIs(t, err, ErrUnknownField)
}

func TestSubmitDisabledOnMismatch(t *testing.T) {
	pairs := [][2]string{
		{"Secret12", "Secret13"},
		{"Secret12", ""},
		{"", "Secret12"},
		{"Secret12", "secret12"},
	}

	for _, p := range pairs {
		c := NewController(nil, nil)
		_, _ = c.Change(FieldPassword, p[0])
		_, _ = c.Change(FieldPassword2, p[1])

		if !c.SubmitDisabled() {
			t.Errorf("SubmitDisabled() with password %q and confirmation %q = false, want true", p[0], p[1])
		}
	}
}

func TestSubmit(t *testing.T) {
	t.Parallel()

	valid := validValues()
	user := domain.UserWihtoutPassword{Username: valid.Username, Email: valid.Email}
	payload := domain.RegisterParams{Username: valid.Username, Password: valid.Password, Email: valid.Email}

	testCases := []struct {
		name       string
		values     Values
		buildStubs func(r *MockRegistrar, n *MockNotifier)
		wantErr    error
		check      func(t *testing.T, c *Controller, out Outcome)
	}{
		{
			name:   "OK",
			values: valid,
			buildStubs: func(r *MockRegistrar, n *MockNotifier) {
				gomock.InOrder(
					r.EXPECT().Register(gomock.Any(), gomock.Eq(payload)).Times(1).Return(user, nil),
					n.EXPECT().Success(gomock.Any(), "alice, welcome to Money Guard!!!").Times(1),
				)
				n.EXPECT().Error(gomock.Any(), gomock.Any()).Times(0)
			},
			check: func(t *testing.T, c *Controller, out Outcome) {
				require.Equal(t, Succeeded, out.State)
				require.Equal(t, user, out.User)
				require.Equal(t, Succeeded, c.State())
				require.Equal(t, Values{}, c.Values())
				require.Empty(t, c.Errors())
			},
		},
		{
			name:   "InvalidForm",
			values: Values{Username: "a", Email: valid.Email, Password: valid.Password, Password2: valid.Password2},
			buildStubs: func(r *MockRegistrar, n *MockNotifier) {
				r.EXPECT().Register(gomock.Any(), gomock.Any()).Times(0)
				n.EXPECT().Success(gomock.Any(), gomock.Any()).Times(0)
				n.EXPECT().Error(gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: ErrInvalidForm,
			check: func(t *testing.T, c *Controller, out Outcome) {
				require.Equal(t, Editing, c.State())
				require.Equal(t, Errors{FieldUsername: "Must be at least 2 characters"}, out.Errors)
				require.Equal(t, "a", c.Values().Username)
			},
		},
		{
			name:   "PasswordMismatch",
			values: Values{Username: valid.Username, Email: valid.Email, Password: valid.Password, Password2: "Secret99"},
			buildStubs: func(r *MockRegistrar, n *MockNotifier) {
				r.EXPECT().Register(gomock.Any(), gomock.Any()).Times(0)
				n.EXPECT().Success(gomock.Any(), gomock.Any()).Times(0)
				n.EXPECT().Error(gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: ErrInvalidForm,
			check: func(t *testing.T, c *Controller, out Outcome) {
				require.True(t, c.SubmitDisabled())
				require.Equal(t, "Passwords must match", out.Errors[FieldPassword2])
			},
		},
		{
			name:   "RegistrationRejected",
			values: valid,
			buildStubs: func(r *MockRegistrar, n *MockNotifier) {
				rejection := &RegistrationError{
					Messages: []string{"Username already exists", "Email already exists"},
					Err:      domain.ErrUsernameAlreadyExists,
				}

				r.EXPECT().Register(gomock.Any(), gomock.Eq(payload)).Times(1).Return(domain.UserWihtoutPassword{}, rejection)
				n.EXPECT().Error(gomock.Any(), "Username already exists").Times(1)
				n.EXPECT().Success(gomock.Any(), gomock.Any()).Times(0)
			},
			check: func(t *testing.T, c *Controller, out Outcome) {
				require.Equal(t, Failed, out.State)
				require.Equal(t, "Username already exists", out.Message)
				require.ErrorIs(t, out.Err, domain.ErrUsernameAlreadyExists)
				require.Equal(t, Failed, c.State())

				// Values stay for correction.
				if diff := cmp.Diff(valid, c.Values()); diff != "" {
					t.Errorf("c.Values() mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:   "UnexpectedError",
			values: valid,
			buildStubs: func(r *MockRegistrar, n *MockNotifier) {
				r.EXPECT().Register(gomock.Any(), gomock.Any()).Times(1).Return(domain.UserWihtoutPassword{}, errors.New("internal"))
				n.EXPECT().Error(gomock.Any(), "internal").Times(1)
			},
			check: func(t *testing.T, c *Controller, out Outcome) {
				require.Equal(t, Failed, out.State)
				require.Equal(t, "internal", out.Message)
				require.Equal(t, valid, c.Values())
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			registrar := NewMockRegistrar(ctrl)
			notifier := NewMockNotifier(ctrl)
			tc.buildStubs(registrar, notifier)

			c := filledController(t, registrar, notifier, tc.values)

			out, err := c.Submit(context.Background())
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("c.Submit() returned error %v, want %v", err, tc.wantErr)
			}

			tc.check(t, c, out)
		})
	}
}

func TestSubmitInProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registrar := NewMockRegistrar(ctrl)
	notifier := NewMockNotifier(ctrl)

	started := make(chan struct{})
	release := make(chan struct{})

	registrar.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Times(1).
		DoAndReturn(func(ctx context.Context, arg domain.RegisterParams) (domain.UserWihtoutPassword, error) {
			close(started)
			<-release

			return domain.UserWihtoutPassword{Username: arg.Username}, nil
		})
	notifier.EXPECT().Success(gomock.Any(), gomock.Any()).Times(1)

	c := filledController(t, registrar, notifier, validValues())

	done := make(chan error, 1)
	go func() {
		_, err := c.Submit(context.Background())
		done <- err
	}()

	<-started

	require.Equal(t, Submitting, c.State())

	_, err := c.Submit(context.Background())
	require.ErrorIs(t, err, ErrSubmitInProgress)

	_, err = c.Change(FieldUsername, "bob")
	require.ErrorIs(t, err, ErrSubmitInProgress)

	close(release)
	require.NoError(t, <-done)
	require.Equal(t, Succeeded, c.State())
}

func TestChangeAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registrar := NewMockRegistrar(ctrl)
	notifier := NewMockNotifier(ctrl)

	registrar.EXPECT().Register(gomock.Any(), gomock.Any()).Times(1).
		Return(domain.UserWihtoutPassword{}, &RegistrationError{Messages: []string{"Email already exists"}})
	notifier.EXPECT().Error(gomock.Any(), "Email already exists").Times(1)

	c := filledController(t, registrar, notifier, validValues())

	_, err := c.Submit(context.Background())
	require.NoError(t, err)
	require.Equal(t, Failed, c.State())

	_, err = c.Change(FieldEmail, "alice2@mail.com")
	require.NoError(t, err)
	require.Equal(t, Editing, c.State())
	require.Equal(t, "alice2@mail.com", c.Values().Email)
}

func TestRegistrationErrorMessage(t *testing.T) {
	require.Equal(t, "first", (&RegistrationError{Messages: []string{"first", "second"}}).Error())
	require.Equal(t, "wrapped", (&RegistrationError{Err: errors.New("wrapped")}).Error())
	require.Equal(t, "registration failed", (&RegistrationError{}).Error())
}
