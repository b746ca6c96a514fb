package copper_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/fivetwenty-io/copper-client/pkg/copper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_MarshalEpochSeconds(t *testing.T) {
	t.Parallel()

	ts := copper.NewTimestamp(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC))

	data, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, "1609459200", string(data))
}

func TestTimestamp_UnmarshalEpochSeconds(t *testing.T) {
	t.Parallel()

	var ts copper.Timestamp

	err := json.Unmarshal([]byte("1609459200"), &ts)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), ts.Time)
}

func TestTimestamp_UnmarshalNull(t *testing.T) {
	t.Parallel()

	var ts copper.Timestamp

	err := json.Unmarshal([]byte("null"), &ts)
	require.NoError(t, err)
	assert.True(t, ts.IsZero())
}

func TestTimestamp_UnmarshalNonInteger(t *testing.T) {
	t.Parallel()

	var ts copper.Timestamp

	err := json.Unmarshal([]byte(`"yesterday"`), &ts)
	require.Error(t, err)
	assert.True(t, copper.IsMalformedResponse(err))
}

func TestTimestamp_TruncatesSubSecond(t *testing.T) {
	t.Parallel()

	ts := copper.NewTimestamp(time.Date(2021, 1, 1, 0, 0, 0, 999_000_000, time.UTC))

	data, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, "1609459200", string(data))
}

func TestTimestamp_Equal(t *testing.T) {
	t.Parallel()

	utc := copper.NewTimestamp(time.Date(2021, 1, 1, 12, 0, 0, 0, time.UTC))
	offset := copper.NewTimestamp(time.Date(2021, 1, 1, 7, 0, 0, 0, time.FixedZone("EST", -5*3600)))

	assert.True(t, utc.Equal(offset))
	assert.False(t, utc.Equal(nil))
}

func TestEmailList_MarshalEmpty(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(copper.EmailList{})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestPhoneNumberList_UnmarshalNull(t *testing.T) {
	t.Parallel()

	var list copper.PhoneNumberList

	err := json.Unmarshal([]byte("null"), &list)
	require.NoError(t, err)
	assert.Nil(t, list)
}

func TestWebsiteList_Unmarshal(t *testing.T) {
	t.Parallel()

	var list copper.WebsiteList

	err := json.Unmarshal([]byte(`[{"url": "https://a.test"}, {"category": "work"}]`), &list)
	require.NoError(t, err)
	assert.Equal(t, copper.WebsiteList{"https://a.test"}, list)
}

func TestWebsiteList_UnmarshalNonStringValue(t *testing.T) {
	t.Parallel()

	var list copper.WebsiteList

	err := json.Unmarshal([]byte(`[{"url": 42}]`), &list)
	require.Error(t, err)
	assert.True(t, copper.IsMalformedResponse(err))
}

func TestAddress_OmitsAbsentFields(t *testing.T) {
	t.Parallel()

	address := copper.Address{City: copper.String("London")}

	data, err := json.Marshal(address)
	require.NoError(t, err)
	assert.JSONEq(t, `{"city": "London"}`, string(data))
}

func TestEntityType_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, copper.EntityPeople.Valid())
	assert.True(t, copper.EntityTasks.Valid())
	assert.False(t, copper.EntityType("leads").Valid())
}

func TestEntityType_Path(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/people", copper.EntityPeople.Path())
	assert.Equal(t, "/opportunities", copper.EntityOpportunities.Path())
}

func TestDefaultBatchOptions(t *testing.T) {
	t.Parallel()

	opts := copper.DefaultBatchOptions()
	assert.True(t, opts.ContinueOnError)
	assert.True(t, opts.ReturnErrors)
}
