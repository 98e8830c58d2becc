package invaders

import (
	"fmt"
	"hash/fnv"

	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot contains the complete session state for determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick      uint64  `msgpack:"tick"`
	Phase     string  `msgpack:"phase"`
	Loss      int     `msgpack:"loss"`
	Stage     int     `msgpack:"stage"`
	Score     int     `msgpack:"score"`
	Lives     int     `msgpack:"lives"`
	Countdown int     `msgpack:"countdown"`
	Direction int     `msgpack:"dir"`
	Speed     float64 `msgpack:"speed"`

	PlayerX  float64 `msgpack:"px"`
	CanShoot bool    `msgpack:"can_shoot"`

	// Each enemy is 4 floats: X, Y, Alive, Health (-1 for standard enemies)
	EnemyData []float64 `msgpack:"enemies"`

	// Each bullet is 2 floats: X, Y
	PlayerBulletData []float64 `msgpack:"pbullets"`
	EnemyBulletData  []float64 `msgpack:"ebullets"`

	RNGState uint64 `msgpack:"rng"`
}

// Snapshot returns the current session state as a Snapshot.
func (s *Session) Snapshot() Snapshot {
	enemyData := make([]float64, 0, len(s.formation.Enemies)*4)
	for i := range s.formation.Enemies {
		e := &s.formation.Enemies[i]
		alive := 0.0
		if e.Alive {
			alive = 1
		}
		health := -1.0
		if b, ok := e.Boss(); ok {
			health = float64(b.Health)
		}
		enemyData = append(enemyData, e.Box.X, e.Box.Y, alive, health)
	}

	return Snapshot{
		Tick:      s.tick,
		Phase:     string(s.phase),
		Loss:      int(s.loss),
		Stage:     s.stage,
		Score:     s.score,
		Lives:     s.lives,
		Countdown: s.countdown,
		Direction: s.formation.Direction,
		Speed:     s.formation.Speed,

		PlayerX:  s.player.Box.X,
		CanShoot: s.player.CanShoot,

		EnemyData:        enemyData,
		PlayerBulletData: flattenBullets(s.playerBullets),
		EnemyBulletData:  flattenBullets(s.enemyBullets),

		RNGState: s.rng.State(),
	}
}

func flattenBullets(bullets []Bullet) []float64 {
	data := make([]float64, 0, len(bullets)*2)
	for _, b := range bullets {
		data = append(data, b.Box.X, b.Box.Y)
	}
	return data
}

// Encode serializes the snapshot with msgpack.
func (snap Snapshot) Encode() ([]byte, error) {
	data, err := msgpack.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("invaders: encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a snapshot produced by Encode.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("invaders: decode snapshot: %w", err)
	}
	return snap, nil
}

// Hash returns an FNV-64a hash of the encoded snapshot for determinism testing.
// Panics if the snapshot cannot be encoded, which only primitive fields rule out.
func (snap Snapshot) Hash() uint64 {
	data, err := snap.Encode()
	if err != nil {
		panic(err)
	}
	h := fnv.New64a()
	_, _ = h.Write(data)
	return h.Sum64()
}
