package migration

import (
	"errors"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"vaultkeeper/internal/config"
)

// MockMigrator is a mock of Migrator
type MockMigrator struct {
	mock.Mock
}

func (m *MockMigrator) Up() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockMigrator) Close() (error, error) {
	args := m.Called()
	return args.Error(0), args.Error(1)
}

var testCfg = config.Storage{
	Driver:      config.DriverPostgres,
	DatabaseURI: "postgres://vault@localhost/vault",
	Migrations:  "migrations",
}

func TestMigration_Up_Success(t *testing.T) {
	mockM := new(MockMigrator)
	mockM.On("Up").Return(nil)
	mockM.On("Close").Return(nil, nil)

	var gotSource, gotDB string
	engine := func(source, db string) (Migrator, error) {
		gotSource, gotDB = source, db
		return mockM, nil
	}

	err := NewMigration(testCfg, engine).Up()

	assert.NoError(t, err)
	assert.Equal(t, "file://migrations", gotSource)
	assert.Equal(t, testCfg.DatabaseURI, gotDB)
	mockM.AssertExpectations(t)
}

func TestMigration_Up_NoChange(t *testing.T) {
	mockM := new(MockMigrator)

	// ErrNoChange means the schema is current.
	mockM.On("Up").Return(migrate.ErrNoChange)
	mockM.On("Close").Return(nil, nil)

	engine := func(source, db string) (Migrator, error) {
		return mockM, nil
	}

	err := NewMigration(testCfg, engine).Up()

	assert.NoError(t, err)
}

func TestMigration_Up_EngineError(t *testing.T) {
	engine := func(source, db string) (Migrator, error) {
		return nil, errors.New("engine crash")
	}

	err := NewMigration(testCfg, engine).Up()

	assert.Error(t, err)
	assert.Equal(t, "engine crash", err.Error())
}

func TestMigration_Up_Errors(t *testing.T) {
	upErr := errors.New("dirty database")
	closeErr := errors.New("connection reset")

	tests := []struct {
		name     string
		up       error
		srcClose error
		dbClose  error
		wantIs   []error
	}{
		{name: "up fails", up: upErr, wantIs: []error{upErr}},
		{name: "close fails", dbClose: closeErr, wantIs: []error{closeErr}},
		{name: "both fail", up: upErr, srcClose: closeErr, wantIs: []error{upErr}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockM := new(MockMigrator)
			mockM.On("Up").Return(tt.up)
			mockM.On("Close").Return(tt.srcClose, tt.dbClose)

			err := NewMigration(testCfg, func(string, string) (Migrator, error) { return mockM, nil }).Up()

			for _, want := range tt.wantIs {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}
