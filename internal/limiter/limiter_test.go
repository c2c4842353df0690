package limiter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid limit only",
			cfg:     Config{Limit: 10},
			wantErr: false,
		},
		{
			name:    "valid offset and limit",
			cfg:     Config{Limit: 10, Offset: 5},
			wantErr: false,
		},
		{
			name:    "valid tail with offset",
			cfg:     Config{Tail: 3, Offset: 5},
			wantErr: false,
		},
		{
			name:    "limit and tail conflict",
			cfg:     Config{Limit: 10, Tail: 5},
			wantErr: true,
			errMsg:  "mutually exclusive",
		},
		{
			name:    "negative limit invalid",
			cfg:     Config{Limit: -1},
			wantErr: true,
			errMsg:  "non-negative",
		},
		{
			name:    "negative offset invalid",
			cfg:     Config{Offset: -1},
			wantErr: true,
			errMsg:  "non-negative",
		},
		{
			name:    "negative tail invalid",
			cfg:     Config{Tail: -1},
			wantErr: true,
			errMsg:  "non-negative",
		},
		{
			name:    "zero values valid",
			cfg:     Config{},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestConfigIsActive(t *testing.T) {
	assert.False(t, Config{}.IsActive())
	assert.True(t, Config{Limit: 10}.IsActive())
	assert.True(t, Config{Offset: 5}.IsActive())
	assert.True(t, Config{Tail: 10}.IsActive())
}

func TestApplyToRows(t *testing.T) {
	rows := [][]string{{"1"}, {"2"}, {"3"}, {"4"}, {"5"}, {"6"}, {"7"}, {"8"}, {"9"}, {"10"}}

	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{name: "limit only", cfg: Config{Limit: 3}, want: []string{"1", "2", "3"}},
		{name: "offset only", cfg: Config{Offset: 5}, want: []string{"6", "7", "8", "9", "10"}},
		{name: "limit and offset", cfg: Config{Limit: 3, Offset: 2}, want: []string{"3", "4", "5"}},
		{name: "tail only", cfg: Config{Tail: 3}, want: []string{"8", "9", "10"}},
		{name: "tail ignores offset", cfg: Config{Tail: 2, Offset: 1}, want: []string{"9", "10"}},
		{name: "offset larger than rows", cfg: Config{Offset: 20}, want: []string{}},
		{name: "limit larger than remaining", cfg: Config{Limit: 100, Offset: 5}, want: []string{"6", "7", "8", "9", "10"}},
		{name: "tail larger than rows", cfg: Config{Tail: 100}, want: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}},
		{name: "inactive", cfg: Config{}, want: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(tt.cfg, rows)
			ids := make([]string, 0, len(got))
			for _, r := range got {
				ids = append(ids, r[0])
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestApplyEmpty(t *testing.T) {
	assert.Empty(t, Apply(Config{Limit: 2, Offset: 1}, []int{}))
	assert.Nil(t, Apply[int](Config{Tail: 1}, nil))
}

func TestBounds(t *testing.T) {
	start, end := Config{Offset: 2, Limit: 2}.Bounds(3)
	assert.Equal(t, 2, start)
	assert.Equal(t, 3, end)
}
