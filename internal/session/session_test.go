package session

import (
	"errors"
	"io"
	"slices"
	"sort"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/slide2048/internal/board"
	"github.com/vovakirdan/slide2048/internal/config"
	"github.com/vovakirdan/slide2048/internal/storage"
)

type fakeStore struct {
	saved   map[string][]int
	last    storage.Result
	saveErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{saved: make(map[string][]int)}
}

func (f *fakeStore) SaveResult(r storage.Result) (int64, error) {
	if f.saveErr != nil {
		return 0, f.saveErr
	}
	f.last = r
	f.saved[r.GameID] = append(f.saved[r.GameID], r.Score)
	return int64(len(f.saved[r.GameID])), nil
}

func (f *fakeStore) RankedScores(gameID string, limit int) ([]int, error) {
	scores := slices.Clone(f.saved[gameID])
	sort.Sort(sort.Reverse(sort.IntSlice(scores)))
	if len(scores) > limit {
		scores = scores[:limit]
	}
	return scores, nil
}

// nearlyOver has one empty cell; sliding right fills it with no merges.
var nearlyOver = board.Board{
	{2, 4, 8, 16},
	{32, 64, 128, 256},
	{512, 1024, 2048, 4096},
	{8192, 16384, 32768, 0},
}

func newTestSession(t *testing.T, store ScoreStore) *Session {
	t.Helper()
	return New(Options{
		GameID: "2048",
		Config: config.Default(),
		Store:  store,
		Seed:   7,
		Logger: log.New(io.Discard),
	})
}

func TestNewStartsGame(t *testing.T) {
	s := newTestSession(t, nil)
	snap := s.Snapshot()

	if snap.Grid.TileCount() != 2 {
		t.Errorf("TileCount = %d, want 2", snap.Grid.TileCount())
	}
	if snap.Score != 0 || snap.Terminal {
		t.Errorf("unexpected fresh snapshot: %+v", snap)
	}
	if s.GameID() != "2048" {
		t.Errorf("GameID = %q", s.GameID())
	}
}

func TestResetIsDeterministic(t *testing.T) {
	a := newTestSession(t, nil)
	b := newTestSession(t, nil)
	a.Reset(99)
	b.Reset(99)

	if !a.Snapshot().Grid.Equal(b.Snapshot().Grid) {
		t.Errorf("same seed gave different boards:\n%v\n%v", a.Snapshot().Grid, b.Snapshot().Grid)
	}
}

func TestMoveRecordsScoreOnceAtGameOver(t *testing.T) {
	store := newFakeStore()
	store.saved["2048"] = []int{50, 400}
	s := newTestSession(t, store)
	if err := s.engine.Load(nearlyOver, 100); err != nil {
		t.Fatal(err)
	}

	out, err := s.Move(board.DirRight)
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if !out.Changed || !out.Terminal {
		t.Fatalf("outcome = %+v, want changed and terminal", out)
	}
	if want := []int{400, 100, 50}; !slices.Equal(out.HighScores, want) {
		t.Errorf("HighScores = %v, want %v", out.HighScores, want)
	}
	if !slices.Equal(s.HighScores(), out.HighScores) {
		t.Errorf("Session.HighScores = %v, want %v", s.HighScores(), out.HighScores)
	}

	out, err = s.Move(board.DirLeft)
	if err != nil {
		t.Fatal(err)
	}
	if out.Changed || !out.Terminal {
		t.Errorf("move after game over = %+v, want unchanged terminal", out)
	}
	if out.HighScores != nil {
		t.Error("high scores should only be reported once")
	}
	if got := len(store.saved["2048"]); got != 3 {
		t.Errorf("store holds %d scores, want 3", got)
	}
	want := storage.Result{GameID: "2048", Score: 100, MaxTile: 32768, Moves: 1}
	if store.last != want {
		t.Errorf("saved result = %+v, want %+v", store.last, want)
	}
}

func TestZeroScoreNotSaved(t *testing.T) {
	store := newFakeStore()
	s := newTestSession(t, store)
	if err := s.engine.Load(nearlyOver, 0); err != nil {
		t.Fatal(err)
	}

	out, err := s.Move(board.DirRight)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Terminal {
		t.Fatal("game should be over")
	}
	if len(store.saved["2048"]) != 0 {
		t.Errorf("zero score was saved: %v", store.saved)
	}
}

func TestStoreErrorDoesNotStopGame(t *testing.T) {
	store := newFakeStore()
	store.saveErr = errors.New("disk full")
	s := newTestSession(t, store)
	if err := s.engine.Load(nearlyOver, 64); err != nil {
		t.Fatal(err)
	}

	out, err := s.Move(board.DirRight)
	if err != nil {
		t.Fatalf("store failure leaked into Move: %v", err)
	}
	if !out.Terminal {
		t.Error("game should still end")
	}

	s.Reset(1)
	if s.Snapshot().Terminal || s.HighScores() != nil {
		t.Error("Reset should start a fresh game")
	}
}

func TestResetRearmsRecorder(t *testing.T) {
	store := newFakeStore()
	s := newTestSession(t, store)

	for range 2 {
		if err := s.engine.Load(nearlyOver, 32); err != nil {
			t.Fatal(err)
		}
		if _, err := s.Move(board.DirRight); err != nil {
			t.Fatal(err)
		}
		s.Reset(3)
	}

	if got := len(store.saved["2048"]); got != 2 {
		t.Errorf("saved %d scores over two games, want 2", got)
	}
}

func TestMoveInvalidDirection(t *testing.T) {
	s := newTestSession(t, nil)
	if _, err := s.Move(board.Direction(9)); !errors.Is(err, board.ErrInvalidDirection) {
		t.Errorf("Move(9) error = %v, want ErrInvalidDirection", err)
	}
}

func TestSwipe(t *testing.T) {
	s := newTestSession(t, nil)
	if err := s.engine.Load(board.Board{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, 0); err != nil {
		t.Fatal(err)
	}

	out, err := s.Swipe(30, 5)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Ignored || out.Changed {
		t.Errorf("short swipe outcome = %+v, want ignored", out)
	}

	out, err = s.Swipe(-120, 40)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Changed {
		t.Error("left swipe should merge the pair")
	}
	if s.Snapshot().Grid[0][0] != 4 || s.Snapshot().Score != 4 {
		t.Errorf("after left swipe: %v score %d", s.Snapshot().Grid, s.Snapshot().Score)
	}
}

func TestPresenterSeesEveryChange(t *testing.T) {
	var snaps []board.Snapshot
	s := New(Options{
		GameID:    "2048",
		Config:    config.Default(),
		Seed:      5,
		Presenter: board.PresenterFunc(func(snap board.Snapshot) { snaps = append(snaps, snap) }),
		Logger:    log.New(io.Discard),
	})
	if len(snaps) != 1 {
		t.Fatalf("presenter calls after New = %d, want 1", len(snaps))
	}

	for _, dir := range board.Directions {
		out, err := s.Move(dir)
		if err != nil {
			t.Fatal(err)
		}
		if out.Changed && !snaps[len(snaps)-1].Grid.Equal(s.Snapshot().Grid) {
			t.Error("last presented snapshot does not match the session")
		}
	}
}

func TestRecorderWithoutStore(t *testing.T) {
	r := NewRecorder(nil, "2048", 5)
	scores, err := r.Record(storage.Result{Score: 100})
	if err != nil || scores != nil {
		t.Errorf("Record without store = %v, %v", scores, err)
	}
	if !r.Recorded() {
		t.Error("Recorded should be true after Record")
	}
	r.Reset()
	if r.Recorded() {
		t.Error("Reset should clear Recorded")
	}
}
