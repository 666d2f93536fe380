// Package mocks provides gomock implementations of the dashboard's ports for tests.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	users := mocks.NewMockUsersAPI(ctrl)
//	users.EXPECT().ListUsers(gomock.Any(), 1, model.UserFilterAll).Return(resp, nil)
package mocks

// Credential and profile endpoints: Login, SendPasswordResetOTP, VerifyPasswordResetOTP, SetPassword,
// GetProfile, UpdateProfile, ChangePassword.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=ports_account_mock.go github.com/target/subscription-admin/internal/ports AccountAPI,ProfileAPI

// Resource endpoints behind every list screen.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=ports_backend_mock.go github.com/target/subscription-admin/internal/ports UsersAPI,AdministratorsAPI,PaymentsAPI,PlansAPI,SubscriptionsAPI,OverviewAPI,APIKeysAPI,PoliciesAPI
