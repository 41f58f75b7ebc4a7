package contract

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/huangsam/debtspot/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validRawInput returns a raw input that passes all validation when the
// mock resolves the working directory as the repo root.
func validRawInput() *ConfigRawInput {
	return &ConfigRawInput{
		TargetDirStr:  ".",
		Sort:          string(schema.SortByHotspot),
		Kind:          string(schema.AllKinds),
		Limit:         10,
		Workers:       4,
		Precision:     1,
		Output:        string(schema.TableOut),
		Color:         "yes",
		CyclomaticAgg: string(schema.CyclomaticMax),
		CacheBackend:  string(schema.SQLiteBackend),
		Ext:           ".py",
	}
}

func TestProcessAndValidate(t *testing.T) {
	workDir, err := os.Getwd()
	require.NoError(t, err)
	ctx := context.Background()

	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError bool
		needsGit    bool // whether validation reaches the repo-root lookup
	}{
		{
			name:     "valid minimal config",
			mutate:   func(*ConfigRawInput) {},
			needsGit: true,
		},
		{
			name:        "invalid sort key",
			mutate:      func(in *ConfigRawInput) { in.Sort = "popularity" },
			expectError: true,
		},
		{
			name:        "invalid kind",
			mutate:      func(in *ConfigRawInput) { in.Kind = "symlink" },
			expectError: true,
		},
		{
			name:        "negative limit",
			mutate:      func(in *ConfigRawInput) { in.Limit = -1 },
			expectError: true,
		},
		{
			name:        "zero workers",
			mutate:      func(in *ConfigRawInput) { in.Workers = 0 },
			expectError: true,
		},
		{
			name:        "precision out of range",
			mutate:      func(in *ConfigRawInput) { in.Precision = 5 },
			expectError: true,
		},
		{
			name:        "invalid output",
			mutate:      func(in *ConfigRawInput) { in.Output = "xml" },
			expectError: true,
		},
		{
			name:        "invalid cyclomatic agg",
			mutate:      func(in *ConfigRawInput) { in.CyclomaticAgg = "avg" },
			expectError: true,
		},
		{
			name:        "invalid color",
			mutate:      func(in *ConfigRawInput) { in.Color = "maybe" },
			expectError: true,
		},
		{
			name:        "invalid cache backend",
			mutate:      func(in *ConfigRawInput) { in.CacheBackend = "redis" },
			expectError: true,
		},
		{
			name: "mysql backend without connection string",
			mutate: func(in *ConfigRawInput) {
				in.CacheBackend = string(schema.MySQLBackend)
			},
			expectError: true,
		},
		{
			name:        "invalid since",
			mutate:      func(in *ConfigRawInput) { in.Since = "whenever" },
			expectError: true,
		},
		{
			name:     "valid relative since",
			mutate:   func(in *ConfigRawInput) { in.Since = "6 months ago" },
			needsGit: true,
		},
		{
			name:        "exclusion escapes target",
			mutate:      func(in *ConfigRawInput) { in.Exclude = "../secrets" },
			expectError: true,
			needsGit:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validRawInput()
			tt.mutate(input)

			mockClient := new(MockGitClient)
			if tt.needsGit {
				mockClient.On("GetRepoRoot", ctx, workDir).Return(workDir, nil)
			}

			cfg := &Config{}
			err := ProcessAndValidate(ctx, cfg, mockClient, input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, workDir, cfg.TargetDir)
			assert.Equal(t, workDir, cfg.RepoRoot)
			assert.Equal(t, "", cfg.TargetRel)
			mockClient.AssertExpectations(t)
		})
	}
}

func TestProcessAndValidateSinceFormats(t *testing.T) {
	workDir, err := os.Getwd()
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("ISO8601", func(t *testing.T) {
		input := validRawInput()
		input.Since = "2024-01-15T00:00:00Z"

		mockClient := new(MockGitClient)
		mockClient.On("GetRepoRoot", ctx, workDir).Return(workDir, nil)

		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(ctx, cfg, mockClient, input))
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), cfg.SinceTime)
	})

	t.Run("date only", func(t *testing.T) {
		input := validRawInput()
		input.Since = "2024-01-15"

		mockClient := new(MockGitClient)
		mockClient.On("GetRepoRoot", ctx, workDir).Return(workDir, nil)

		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(ctx, cfg, mockClient, input))
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), cfg.SinceTime)
	})

	t.Run("empty means full history", func(t *testing.T) {
		input := validRawInput()

		mockClient := new(MockGitClient)
		mockClient.On("GetRepoRoot", ctx, workDir).Return(workDir, nil)

		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(ctx, cfg, mockClient, input))
		assert.True(t, cfg.SinceTime.IsZero())
	})
}

func TestProcessAndValidateExtensions(t *testing.T) {
	workDir, err := os.Getwd()
	require.NoError(t, err)
	ctx := context.Background()

	input := validRawInput()
	input.Ext = "py, GO,.js"

	mockClient := new(MockGitClient)
	mockClient.On("GetRepoRoot", ctx, workDir).Return(workDir, nil)

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(ctx, cfg, mockClient, input))

	assert.True(t, cfg.HasExtension("main.py"))
	assert.True(t, cfg.HasExtension("server.go"))
	assert.True(t, cfg.HasExtension("APP.JS"))
	assert.False(t, cfg.HasExtension("notes.md"))
	assert.False(t, cfg.HasExtension("Makefile"))
}

func TestConfigIsExcluded(t *testing.T) {
	cfg := &Config{Excludes: []string{"node_modules", "src/vendor"}}

	assert.True(t, cfg.IsExcluded("node_modules"))
	assert.True(t, cfg.IsExcluded("node_modules/pkg/index.js"))
	assert.True(t, cfg.IsExcluded("src/vendor/lib.py"))
	assert.False(t, cfg.IsExcluded("src/vendored/lib.py"))
	assert.False(t, cfg.IsExcluded("node_modules_backup"))
}

func TestConfigPathspec(t *testing.T) {
	assert.Equal(t, ".", (&Config{TargetRel: ""}).Pathspec())
	assert.Equal(t, "src/api", (&Config{TargetRel: "src/api"}).Pathspec())
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	tests := []struct {
		name        string
		backend     schema.DatabaseBackend
		connStr     string
		expectError bool
	}{
		{"sqlite needs nothing", schema.SQLiteBackend, "", false},
		{"none needs nothing", schema.NoneBackend, "", false},
		{"valid mysql", schema.MySQLBackend, "user:pass@tcp(localhost:3306)/cache", false},
		{"mysql missing tcp", schema.MySQLBackend, "user:pass@localhost/cache", true},
		{"mysql empty", schema.MySQLBackend, "", true},
		{"valid postgresql", schema.PostgreSQLBackend, "host=localhost port=5432 user=postgres dbname=cache", false},
		{"postgresql missing host", schema.PostgreSQLBackend, "port=5432 dbname=cache", true},
		{"postgresql missing dbname", schema.PostgreSQLBackend, "host=localhost", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatabaseConnectionString(tt.backend, tt.connStr)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
