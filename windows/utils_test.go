package windows

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCleanFilename(t *testing.T) {
	assert.Equal(t, "my_table_1", cleanFilename("my table (1)"))
	assert.Equal(t, "sales-2025_q1", cleanFilename("sales-2025_q1"))
	assert.Equal(t, "", cleanFilename("äö!"))
}

func TestTableNameFor(t *testing.T) {
	assert.Equal(t, "fruit", tableNameFor("/data/fruit.csv"))
	assert.Equal(t, "archive.tar", tableNameFor("archive.tar.parquet"))
}

func TestCreateTimeoutContext(t *testing.T) {
	ctx, cancel := createTimeoutContext(0)
	defer cancel()

	deadline, ok := ctx.Deadline()
	assert.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(DefaultTimeoutSeconds*time.Second), deadline, 5*time.Second)
}
