package archive

import (
	"bytes"
	stderrors "errors"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calpyte/dstats/internal/errors"
	"github.com/calpyte/dstats/internal/model"
)

func buildArchive(t *testing.T, entries map[string]string) *zip.Reader {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	return zr
}

func TestReadFullPackage(t *testing.T) {
	zr := buildArchive(t, map[string]string{
		"Account/user.json":   `{"id":"77","username":"alex","global_name":"Alex","created_at":"2019-05-01 10:00:00"}`,
		"Messages/index.json": `{"100":"Direct Message with Bea#0002","200":"general in My Server"}`,
		"Messages/c100/channel.json":  `{"type":"DM","recipients":["77","88"]}`,
		"Messages/c100/messages.json": `[{"Timestamp":"2024-01-01 10:00:00","Contents":"hello"},{"Timestamp":"2024-01-01 11:00:00","Contents":"pic","Attachments":"https://cdn.example/a.png"}]`,
		"Messages/c200/channel.json":  `{"type":"GUILD_TEXT","name":"general","guild":{"id":"1","name":"My Server"}}`,
		"Messages/c200/messages.json": `[{"Timestamp":"2024-01-02 09:00:00","Contents":"hey"}]`,
	})

	export, err := read(zr)
	require.NoError(t, err)

	assert.Equal(t, "Alex", export.User.DisplayName())
	assert.Equal(t, "2019-05-01 10:00:00", export.User.CreatedAt)

	require.Len(t, export.Channels, 2)
	dm := export.Channels[0]
	assert.Equal(t, "100", dm.ID)
	assert.Equal(t, "Bea", dm.Name)
	assert.Equal(t, "Direct Messages", dm.Group)
	assert.Equal(t, model.ChannelTypeDM, dm.Type)
	assert.Equal(t, 2, dm.MessageCount)
	assert.Equal(t, []string{"77", "88"}, dm.Recipients)

	guild := export.Channels[1]
	assert.Equal(t, "#general", guild.Name)
	assert.Equal(t, "My Server", guild.Group)
	assert.Equal(t, 1, guild.MessageCount)

	require.Len(t, export.Messages, 3)
	assert.Equal(t, "Bea", export.Messages[0].Channel)
	assert.False(t, export.Messages[0].HasAttachment)
	assert.True(t, export.Messages[1].HasAttachment)
	assert.Equal(t, "#general", export.Messages[2].Channel)
	assert.Equal(t, model.ChannelType("GUILD_TEXT"), export.Messages[2].Type)
}

func TestReadChannelOrderIsAscending(t *testing.T) {
	zr := buildArchive(t, map[string]string{
		"Messages/c3/channel.json":  `{"type":"DM"}`,
		"Messages/c3/messages.json": `[{"Timestamp":"2024-01-01 00:00:00","Contents":"c"}]`,
		"Messages/c1/channel.json":  `{"type":"DM"}`,
		"Messages/c1/messages.json": `[{"Timestamp":"2024-01-01 00:00:00","Contents":"a"}]`,
		"Messages/c2/channel.json":  `{"type":"DM"}`,
		"Messages/c2/messages.json": `[{"Timestamp":"2024-01-01 00:00:00","Contents":"b"}]`,
	})

	export, err := read(zr)
	require.NoError(t, err)

	require.Len(t, export.Channels, 3)
	assert.Equal(t, []string{"1", "2", "3"}, []string{export.Channels[0].ID, export.Channels[1].ID, export.Channels[2].ID})
	assert.Equal(t, "a", export.Messages[0].Contents)
	assert.Equal(t, "b", export.Messages[1].Contents)
	assert.Equal(t, "c", export.Messages[2].Contents)
}

func TestReadDegradation(t *testing.T) {
	zr := buildArchive(t, map[string]string{
		// Valid metadata, missing message list: kept with zero messages.
		"Messages/c1/channel.json": `{"type":"DM"}`,
		// Malformed metadata: channel skipped entirely.
		"Messages/c2/channel.json":  `{not json`,
		"Messages/c2/messages.json": `[{"Timestamp":"2024-01-01 00:00:00","Contents":"lost"}]`,
		// Malformed message list: kept with zero messages.
		"Messages/c3/channel.json":  `{"type":"GROUP_DM","name":"gang"}`,
		"Messages/c3/messages.json": `[{"Timestamp":`,
	})

	export, err := read(zr)
	require.NoError(t, err)

	require.Len(t, export.Channels, 2)
	assert.Equal(t, "1", export.Channels[0].ID)
	assert.Equal(t, 0, export.Channels[0].MessageCount)
	assert.Equal(t, "3", export.Channels[1].ID)
	assert.Equal(t, 0, export.Channels[1].MessageCount)
	assert.Empty(t, export.Messages)
}

func TestReadMissingOptionalEntries(t *testing.T) {
	zr := buildArchive(t, map[string]string{
		"Messages/c5/channel.json": `{"name":"mystery"}`,
	})

	export, err := read(zr)
	require.NoError(t, err)

	assert.Equal(t, model.User{}, export.User)
	require.Len(t, export.Channels, 1)
	// No type in metadata: treated as an unknown guild channel.
	assert.Equal(t, model.ChannelTypeUnknown, export.Channels[0].Type)
	assert.Equal(t, "#mystery", export.Channels[0].Name)
	assert.Equal(t, "Unknown Server", export.Channels[0].Group)
}

func TestReadEmptyPackage(t *testing.T) {
	zr := buildArchive(t, map[string]string{"readme.txt": "nothing here"})

	export, err := read(zr)
	require.NoError(t, err)
	assert.Empty(t, export.Channels)
	assert.Empty(t, export.Messages)
}

func TestReadArchiveNotFound(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.zip"))
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrArchiveNotFound))
}
