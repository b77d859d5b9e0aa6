package services

import (
	"encoding/json"
	"io"
	"log"
	"time"

	"haven/internal/domain"
)

// fakeClock hands out a controllable now.
type fakeClock struct {
	t time.Time
}

func newFakeClock(t time.Time) *fakeClock {
	return &fakeClock{t: t}
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) time.Time {
	c.t = c.t.Add(d)
	return c.t
}

// fakeStore is an in-memory FlagStore.
type fakeStore struct {
	blobs map[string][]byte
	sets  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{blobs: make(map[string][]byte)}
}

func (s *fakeStore) Get(key string, out any) bool {
	data, ok := s.blobs[key]
	if !ok {
		return false
	}
	return json.Unmarshal(data, out) == nil
}

func (s *fakeStore) Read(key string) ([]byte, bool) {
	data, ok := s.blobs[key]
	return data, ok
}

func (s *fakeStore) Set(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.blobs[key] = data
	s.sets++
	return nil
}

func (s *fakeStore) Delete(key string) error {
	delete(s.blobs, key)
	return nil
}

// fakePresenter records render calls and can refuse a view.
type fakePresenter struct {
	shown    []domain.View
	revealed []int
	bookOpen bool
	failOn   domain.View
}

func (p *fakePresenter) ShowView(v domain.View) error {
	if p.failOn != "" && v == p.failOn {
		return domain.ErrViewUnavailable
	}
	p.shown = append(p.shown, v)
	return nil
}

func (p *fakePresenter) RevealSection(idx int) {
	p.revealed = append(p.revealed, idx)
}

func (p *fakePresenter) SetBookOpen(open bool) {
	p.bookOpen = open
}

// fakeAudio records the last playing state.
type fakeAudio struct {
	playing bool
	calls   int
}

func (a *fakeAudio) SetPlaying(playing bool) {
	a.playing = playing
	a.calls++
}

// fakeChime counts notifications.
type fakeChime struct {
	countdownDone int
	zenStarts     int
	zenEnds       int
}

func (c *fakeChime) CountdownComplete() { c.countdownDone++ }
func (c *fakeChime) ZenStart()          { c.zenStarts++ }
func (c *fakeChime) ZenEnd()            { c.zenEnds++ }

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}
