package userservice

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"

	"github.com/go-petr/money-guard/internal/domain"
	"github.com/go-petr/money-guard/internal/registration"
	"github.com/go-petr/money-guard/pkg/errorspkg"
	"github.com/go-petr/money-guard/pkg/passpkg"
	"github.com/go-petr/money-guard/pkg/randompkg"
)

func randomUser(t *testing.T) (domain.User, string) {
	password := randompkg.Password()

	hashedPassword, err := passpkg.Hash(password)
	if err != nil {
		t.Fatalf("passpkg.Hash(%v) failed: %v", password, err)
	}

	user := domain.User{
		Username:       randompkg.Username(),
		HashedPassword: hashedPassword,
		Email:          randompkg.Email(),
	}

	return user, password
}

type eqCreateUserParamsMathcer struct {
	arg      domain.CreateUserParams
	password string
}

func (e eqCreateUserParamsMathcer) Matches(x interface{}) bool {
	arg, ok := x.(domain.CreateUserParams)
	if !ok {
		return false
	}

	err := passpkg.Check(e.password, arg.HashedPassword)
	if err != nil {
		return false
	}

	e.arg.HashedPassword = arg.HashedPassword

	return reflect.DeepEqual(e.arg, arg)
}

func (e eqCreateUserParamsMathcer) String() string {
	return fmt.Sprintf("mathces arg %v and password %v", e.arg, e.password)
}

func EqCreateUserParams(arg domain.CreateUserParams, password string) gomock.Matcher {
	return eqCreateUserParamsMathcer{arg, password}
}

func TestRegister(t *testing.T) {
	t.Parallel()

	user, password := randomUser(t)

	wantParams := domain.CreateUserParams{
		Username: user.Username,
		Email:    user.Email,
	}

	testCases := []struct {
		name          string
		input         domain.RegisterParams
		buildStubs    func(userRepo *MockRepo)
		checkResponse func(t *testing.T, got domain.UserWihtoutPassword)
		checkError    func(t *testing.T, err error)
	}{
		{
			name:  "OK",
			input: domain.RegisterParams{Username: user.Username, Password: password, Email: user.Email},
			buildStubs: func(userRepo *MockRepo) {
				userRepo.EXPECT().
					Create(gomock.Any(), EqCreateUserParams(wantParams, password)).
					Times(1).
					Return(user, nil)
			},
			checkResponse: func(t *testing.T, got domain.UserWihtoutPassword) {
				want := NewUserWihtoutPassword(user)

				if !cmp.Equal(got, want) {
					t.Errorf("domain.UserWihtoutPassword = %+v, want %+v", got, want)
				}
			},
		},
		{
			name:  "HashPasswordErr",
			input: domain.RegisterParams{Username: user.Username, Password: strings.Repeat("long", 100), Email: user.Email},
			buildStubs: func(userRepo *MockRepo) {
				userRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkError: func(t *testing.T, err error) {
				if err != errorspkg.ErrInternal {
					t.Errorf("err = %v, want %v", err, errorspkg.ErrInternal)
				}
			},
		},
		{
			name:  "DuplicateUsername",
			input: domain.RegisterParams{Username: user.Username, Password: password, Email: user.Email},
			buildStubs: func(userRepo *MockRepo) {
				userRepo.EXPECT().
					Create(gomock.Any(), EqCreateUserParams(wantParams, password)).
					Times(1).
					Return(domain.User{}, domain.ErrUsernameAlreadyExists)
			},
			checkError: func(t *testing.T, err error) {
				var re *registration.RegistrationError
				if !errors.As(err, &re) {
					t.Fatalf("err = %v, want *registration.RegistrationError", err)
				}

				if diff := cmp.Diff([]string{"Username already exists"}, re.Messages); diff != "" {
					t.Errorf("re.Messages mismatch (-want +got):\n%s", diff)
				}

				if !errors.Is(err, domain.ErrUsernameAlreadyExists) {
					t.Errorf("errors.Is(err, ErrUsernameAlreadyExists) = false, want true")
				}
			},
		},
		{
			name:  "DuplicateEmail",
			input: domain.RegisterParams{Username: user.Username, Password: password, Email: user.Email},
			buildStubs: func(userRepo *MockRepo) {
				userRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.User{}, domain.ErrEmailALreadyExists)
			},
			checkError: func(t *testing.T, err error) {
				if !errors.Is(err, domain.ErrEmailALreadyExists) {
					t.Errorf("err = %v, want %v", err, domain.ErrEmailALreadyExists)
				}
			},
		},
		{
			name:  "CreateUserRepoErr",
			input: domain.RegisterParams{Username: user.Username, Password: password, Email: user.Email},
			buildStubs: func(userRepo *MockRepo) {
				userRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.User{}, errors.New("connection reset"))
			},
			checkError: func(t *testing.T, err error) {
				if err != errorspkg.ErrInternal {
					t.Errorf("err = %v, want %v", err, errorspkg.ErrInternal)
				}
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := NewMockRepo(ctrl)
			userService := New(userRepo)

			tc.buildStubs(userRepo)

			got, err := userService.Register(context.Background(), tc.input)
			if err != nil {
				if tc.checkError == nil {
					t.Fatalf("userService.Register(context.Background(), %+v) returned unexpected error %v", tc.input, err)
				}

				tc.checkError(t, err)

				return
			}

			if tc.checkError != nil {
				t.Fatalf("userService.Register(context.Background(), %+v) returned nil error", tc.input)
			}

			tc.checkResponse(t, got)
		})
	}
}

func TestCheckPassword(t *testing.T) {
	t.Parallel()

	user, password := randomUser(t)

	testCases := []struct {
		name          string
		email         string
		password      string
		buildStubs    func(userRepo *MockRepo)
		checkResponse func(t *testing.T, got domain.UserWihtoutPassword)
		wantError     error
	}{
		{
			name:     "OK",
			email:    user.Email,
			password: password,
			buildStubs: func(userRepo *MockRepo) {
				userRepo.EXPECT().
					GetByEmail(gomock.Any(), user.Email).
					Times(1).
					Return(user, nil)
			},
			checkResponse: func(t *testing.T, got domain.UserWihtoutPassword) {
				want := NewUserWihtoutPassword(user)

				if !cmp.Equal(got, want) {
					t.Errorf("domain.UserWihtoutPassword = %+v, want %+v", got, want)
				}
			},
		},
		{
			name:     "UserNotFound",
			email:    user.Email,
			password: password,
			buildStubs: func(userRepo *MockRepo) {
				userRepo.EXPECT().
					GetByEmail(gomock.Any(), user.Email).
					Times(1).
					Return(domain.User{}, domain.ErrUserNotFound)
			},
			wantError: domain.ErrUserNotFound,
		},
		{
			name:     "WrongPassword",
			email:    user.Email,
			password: "Wrong123",
			buildStubs: func(userRepo *MockRepo) {
				userRepo.EXPECT().
					GetByEmail(gomock.Any(), user.Email).
					Times(1).
					Return(user, nil)
			},
			wantError: domain.ErrWrongPassword,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := NewMockRepo(ctrl)
			userService := New(userRepo)

			tc.buildStubs(userRepo)

			got, err := userService.CheckPassword(context.Background(), tc.email, tc.password)
			if err != nil {
				if err == tc.wantError {
					return
				}

				t.Fatalf("userService.CheckPassword(context.Background(), %v, %v) got error %v, want %v",
					tc.email, tc.password, err, tc.wantError)
			}

			if tc.wantError != nil {
				t.Fatalf("userService.CheckPassword() returned nil error, want %v", tc.wantError)
			}

			tc.checkResponse(t, got)
		})
	}
}
