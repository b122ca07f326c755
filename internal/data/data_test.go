package data

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hazadus/go-tracklist/internal/playlist"
	"github.com/hazadus/go-tracklist/internal/track"
)

func newTestPlaylist(t *testing.T, name string) *playlist.Playlist {
	t.Helper()
	p := playlist.New(name)
	for _, rec := range []TrackRecord{
		{Title: "Bohemian Rhapsody", Artist: "Queen", Duration: 354},
		{Title: "Imagine", Artist: "John Lennon", Duration: 187},
		{Title: "Yesterday", Artist: "The Beatles", Duration: 125},
	} {
		tr, err := track.New(rec.Title, rec.Artist, rec.Duration)
		if err != nil {
			t.Fatalf("Ошибка создания трека: %v", err)
		}
		if err := p.AddLast(tr); err != nil {
			t.Fatalf("Ошибка добавления трека: %v", err)
		}
	}
	return p
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")

	library := NewLibrary()
	library.PutPlaylist(newTestPlaylist(t, "Classics"))
	if err := library.SaveData(path); err != nil {
		t.Fatalf("Ошибка сохранения данных: %v", err)
	}

	loaded := NewLibrary()
	if err := loaded.LoadData(path); err != nil {
		t.Fatalf("Ошибка загрузки данных: %v", err)
	}

	p, err := loaded.Playlist("Classics")
	if err != nil {
		t.Fatalf("Ошибка восстановления плейлиста: %v", err)
	}
	if p.Size() != 3 || p.TotalDuration() != 666 {
		t.Errorf("Ожидалось 3 трека и 666 секунд, получено %d и %d", p.Size(), p.TotalDuration())
	}
	first, _ := p.Get(0)
	last, _ := p.Get(2)
	if first.Title() != "Bohemian Rhapsody" || last.Title() != "Yesterday" {
		t.Errorf("Порядок треков нарушен: %s", p)
	}
	if loaded.Playlists[0].ID != library.Playlists[0].ID {
		t.Errorf("ID должен сохраниться: %s != %s", loaded.Playlists[0].ID, library.Playlists[0].ID)
	}
}

func TestLoadMissingOrEmptyFile(t *testing.T) {
	tempDir := t.TempDir()

	library := NewLibrary()
	library.PutPlaylist(playlist.New("stale"))
	if err := library.LoadData(filepath.Join(tempDir, "missing.yaml")); err != nil {
		t.Fatalf("Отсутствующий файл не должен вызывать ошибку: %v", err)
	}
	if len(library.Playlists) != 0 {
		t.Errorf("Ожидалась пустая библиотека, получено %d", len(library.Playlists))
	}

	emptyPath := filepath.Join(tempDir, "empty.yaml")
	if err := os.WriteFile(emptyPath, nil, 0644); err != nil {
		t.Fatalf("Ошибка записи файла: %v", err)
	}
	if err := library.LoadData(emptyPath); err != nil {
		t.Fatalf("Пустой файл не должен вызывать ошибку: %v", err)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(path, []byte("playlists: [unclosed"), 0644); err != nil {
		t.Fatalf("Ошибка записи файла: %v", err)
	}

	if err := NewLibrary().LoadData(path); err == nil {
		t.Error("Ожидалась ошибка при разборе некорректного YAML")
	}
}

func TestPlaylistWithInvalidTrack(t *testing.T) {
	library := &Library{
		Playlists: []PlaylistRecord{
			{Name: "broken", Tracks: []TrackRecord{{Title: "Ok", Artist: "A", Duration: 10}, {Title: "", Artist: "B", Duration: 5}}},
		},
	}

	_, err := library.Playlist("broken")
	if !errors.Is(err, track.ErrInvalidArgument) {
		t.Errorf("Ожидалась ошибка ErrInvalidArgument, получено %v", err)
	}
}

func TestPutPlaylistReplacesByName(t *testing.T) {
	library := NewLibrary()
	library.PutPlaylist(newTestPlaylist(t, "Mix"))
	id := library.Playlists[0].ID
	if id == "" {
		t.Fatal("Ожидался сгенерированный ID")
	}

	p, err := library.Playlist("Mix")
	if err != nil {
		t.Fatalf("Ошибка восстановления плейлиста: %v", err)
	}
	if _, err := p.RemoveAt(0); err != nil {
		t.Fatalf("Ошибка удаления трека: %v", err)
	}
	library.PutPlaylist(p)

	if len(library.Playlists) != 1 {
		t.Fatalf("Ожидался 1 плейлист, получено %d", len(library.Playlists))
	}
	if library.Playlists[0].ID != id {
		t.Errorf("ID не должен меняться при замене: %s != %s", library.Playlists[0].ID, id)
	}
	if len(library.Playlists[0].Tracks) != 2 {
		t.Errorf("Ожидалось 2 трека, получено %d", len(library.Playlists[0].Tracks))
	}
}

func TestNamesAndDelete(t *testing.T) {
	library := NewLibrary()
	library.PutPlaylist(playlist.New("b"))
	library.PutPlaylist(playlist.New("a"))

	names := library.Names()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("Ожидались имена [a b], получено %v", names)
	}

	if err := library.DeletePlaylist("a"); err != nil {
		t.Fatalf("Ошибка удаления плейлиста: %v", err)
	}
	if err := library.DeletePlaylist("a"); !errors.Is(err, ErrPlaylistNotFound) {
		t.Errorf("Ожидалась ошибка ErrPlaylistNotFound, получено %v", err)
	}
	if _, err := library.Playlist("a"); !errors.Is(err, ErrPlaylistNotFound) {
		t.Errorf("Ожидалась ошибка ErrPlaylistNotFound, получено %v", err)
	}
}

func TestPlaylistPreservesRecordOrder(t *testing.T) {
	records := []TrackRecord{
		{Title: "One", Artist: "A", Duration: 1},
		{Title: "Two", Artist: "B", Duration: 2},
		{Title: "Three", Artist: "C", Duration: 3},
		{Title: "Four", Artist: "D", Duration: 4},
	}
	library := &Library{Playlists: []PlaylistRecord{{ID: "id", Name: "Mix", Tracks: records}}}

	p, err := library.Playlist("Mix")
	if err != nil {
		t.Fatalf("Ошибка восстановления плейлиста: %v", err)
	}
	if p.Size() != len(records) {
		t.Fatalf("Ожидалось %d треков, получено %d", len(records), p.Size())
	}
	for i, tr := range p.All() {
		if tr.Title() != records[i].Title || tr.DurationSeconds() != records[i].Duration {
			t.Errorf("Позиция %d: ожидался %s, получено %s", i, records[i].Title, tr)
		}
	}
}
