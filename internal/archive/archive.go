// Package archive reads a Discord data package: it enumerates the per-channel
// records inside the zip container, resolves each channel's display identity
// from the index hints, and merges every channel's messages into one tagged
// stream ordered by ascending channel id.
package archive

import (
	"fmt"
	"io"
	"io/fs"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"github.com/klauspost/compress/zip"
	"github.com/rs/zerolog/log"

	"github.com/calpyte/dstats/internal/errors"
	"github.com/calpyte/dstats/internal/model"
)

// Entry conventions of the data package.
const (
	userEntry     = "Account/user.json"
	indexEntry    = "Messages/index.json"
	messagesRoot  = "Messages/"
	channelPrefix = "Messages/c"
	metaSuffix    = "/channel.json"
)

// Export is everything extracted from one data package: the owner's profile,
// the resolved per-channel summaries in ascending-id order, and the unified
// tagged message stream in the same channel order.
type Export struct {
	User     model.User
	Channels []*model.Channel
	Messages []*model.Message
}

// Read extracts an Export from the package at path.
//
// Only a container that cannot be opened at all is fatal. A channel whose
// metadata entry is missing or malformed is skipped; a valid channel whose
// message list is missing or malformed is kept with zero messages.
func Read(path string) (*Export, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, errors.ArchiveNotFound(path, err)
	}
	defer zr.Close()

	return read(&zr.Reader)
}

func read(zr *zip.Reader) (*Export, error) {
	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		files[f.Name] = f
	}

	export := &Export{}

	var user model.User
	if err := decodeEntry(files, userEntry, &user); err == nil {
		export.User = user
	} else {
		log.Debug().Err(err).Msg("no usable user profile entry")
	}

	index := make(map[string]string)
	if err := decodeEntry(files, indexEntry, &index); err != nil {
		log.Debug().Err(err).Msg("no usable index entry")
		index = map[string]string{}
	}

	dirs := channelDirs(files)

	// Channels decode independently; the results slice keeps the final
	// stream in ascending-channel-id order regardless of which worker
	// finishes first.
	results := make([]*channelData, len(dirs))
	jobs := make(chan int)
	workers := runtime.NumCPU()
	if workers > len(dirs) {
		workers = len(dirs)
	}
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				cdir := dirs[i]
				results[i] = loadChannel(files, cdir, index[cdir[1:]])
			}
		}()
	}
	for i := range dirs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, r := range results {
		if r == nil {
			continue
		}
		export.Channels = append(export.Channels, r.channel)
		export.Messages = append(export.Messages, r.messages...)
	}
	return export, nil
}

// channelDirs returns the channel directory names ("c<id>") found in the
// container, ascending.
func channelDirs(files map[string]*zip.File) []string {
	seen := make(map[string]struct{})
	for name := range files {
		if strings.HasPrefix(name, channelPrefix) && strings.HasSuffix(name, metaSuffix) {
			parts := strings.Split(name, "/")
			if len(parts) >= 2 {
				seen[parts[1]] = struct{}{}
			}
		}
	}
	dirs := make([]string, 0, len(seen))
	for d := range seen {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	return dirs
}

type channelData struct {
	channel  *model.Channel
	messages []*model.Message
}

// loadChannel decodes one channel's metadata and message list, resolves its
// identity and tags its messages. Returns nil when the metadata entry is
// unusable.
func loadChannel(files map[string]*zip.File, cdir, hint string) *channelData {
	id := cdir[1:]

	var meta model.RawChannel
	if err := decodeEntry(files, messagesRoot+cdir+metaSuffix, &meta); err != nil {
		log.Debug().Err(err).Str("channel", id).Msg("skipping channel without metadata")
		return nil
	}
	// The directory name is authoritative for the id.
	meta.ID = id
	if meta.Type == "" {
		meta.Type = model.ChannelTypeUnknown
	}

	var raw []model.RawMessage
	if err := decodeEntry(files, messagesRoot+cdir+"/messages.json", &raw); err != nil {
		log.Debug().Err(err).Str("channel", id).Msg("channel has no usable message list")
		raw = nil
	}

	display, group := Resolve(&meta, hint)

	messages := make([]*model.Message, 0, len(raw))
	for _, r := range raw {
		messages = append(messages, &model.Message{
			Timestamp:     r.Timestamp,
			Contents:      r.Contents,
			HasAttachment: r.Attachments.Present,
			Channel:       display,
			Group:         group,
			Type:          meta.Type,
		})
	}

	return &channelData{
		channel: &model.Channel{
			ID:           id,
			Name:         display,
			Group:        group,
			Type:         meta.Type,
			MessageCount: len(messages),
			Recipients:   meta.Recipients,
		},
		messages: messages,
	}
}

// decodeEntry unmarshals one named entry. Callers must discard v on error:
// a malformed entry may leave it partially filled.
func decodeEntry(files map[string]*zip.File, name string, v any) error {
	f, ok := files[name]
	if !ok {
		return fmt.Errorf("entry %s: %w", name, fs.ErrNotExist)
	}
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("entry %s: %w", name, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return fmt.Errorf("entry %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("entry %s: %w", name, err)
	}
	return nil
}
