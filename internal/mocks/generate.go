// Package mocks provides generated mocks for the storage ports.
//
// Mocks are generated with go.uber.org/mock (gomock). To regenerate after an
// interface change, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	store := mocks.NewMockLeermiddelStore(ctrl)
//	store.EXPECT().GetByID(gomock.Any(), "id").Return(leermiddel, nil)
package mocks

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=leermiddel_store_mock.go github.com/leerbron/leerbron-api/internal/ports LeermiddelStore

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=reactie_store_mock.go github.com/leerbron/leerbron-api/internal/ports ReactieStore
