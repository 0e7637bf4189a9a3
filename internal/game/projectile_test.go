package game

import (
	"math"
	"testing"
)

func TestProjectiles_Integrate(t *testing.T) {
	gm, p, cfg := openField()
	projs := []Projectile{{X: 20, Z: 20, VelX: 20, VelZ: -10, Owner: OwnerEnemy}}

	kept, hits, walls := StepProjectiles(0.1, projs, p, gm, cfg)
	if hits != 0 || walls != 0 || len(kept) != 1 {
		t.Fatalf("hits=%d walls=%d kept=%d, want 0/0/1", hits, walls, len(kept))
	}
	if math.Abs(kept[0].X-22) > 1e-9 || math.Abs(kept[0].Z-19) > 1e-9 {
		t.Fatalf("pos=(%.2f,%.2f), want (22,19)", kept[0].X, kept[0].Z)
	}
}

func TestProjectiles_PlayerContact(t *testing.T) {
	gm, p, cfg := openField()
	projs := []Projectile{{X: 50, Z: 48, VelZ: 20, Owner: OwnerEnemy}}

	// 0.045s moves it to (50,48.9), still outside the contact radius.
	kept, hits, _ := StepProjectiles(0.045, projs, p, gm, cfg)
	if hits != 0 || len(kept) != 1 {
		t.Fatalf("distance 1.1 should not hit (hits=%d)", hits)
	}
	kept, hits, _ = StepProjectiles(0.01, kept, p, gm, cfg)
	if hits != 1 || len(kept) != 0 {
		t.Fatalf("hits=%d kept=%d, want 1/0", hits, len(kept))
	}
	if p.Health != cfg.PlayerHealth-cfg.ProjectileDamage {
		t.Fatalf("health=%d, want %d", p.Health, cfg.PlayerHealth-cfg.ProjectileDamage)
	}
}

func TestProjectiles_PlayerContactBeatsWall(t *testing.T) {
	cfg := DefaultConfig()
	gm := NewGridMap(10, 10, 5)
	gm.setCell(1, 2, CellWall) // box x in [2.5,7.5]
	p := NewPlayer(7.6, 10, cfg)

	// Lands at x=7.2: inside the wall and 0.4 from the player.
	projs := []Projectile{{X: 6.2, Z: 10, VelX: 10, Owner: OwnerEnemy}}
	kept, hits, walls := StepProjectiles(0.1, projs, p, gm, cfg)
	if hits != 1 || walls != 0 || len(kept) != 0 {
		t.Fatalf("hits=%d walls=%d kept=%d, want 1/0/0", hits, walls, len(kept))
	}
	if p.Health != cfg.PlayerHealth-cfg.ProjectileDamage {
		t.Fatalf("player should be damaged exactly once, health=%d", p.Health)
	}
}

func TestProjectiles_WallRemoves(t *testing.T) {
	cfg := DefaultConfig()
	gm := borderedGrid(10, 10, 5)
	p := NewPlayer(25, 25, cfg)
	projs := []Projectile{
		{X: 5, Z: 5, VelX: -20, Owner: OwnerEnemy},  // into the left wall
		{X: 20, Z: 20, VelX: 20, Owner: OwnerEnemy}, // open floor
	}
	kept, hits, walls := StepProjectiles(0.2, projs, p, gm, cfg)
	if walls != 1 || hits != 0 {
		t.Fatalf("walls=%d hits=%d, want 1/0", walls, hits)
	}
	if len(kept) != 1 || math.Abs(kept[0].X-24) > 1e-9 {
		t.Fatalf("the open-floor projectile should survive at x=24, kept=%+v", kept)
	}
	if p.Health != cfg.PlayerHealth {
		t.Fatal("wall hits do not damage the player")
	}
}

func TestProjectiles_LeavingGridIsWall(t *testing.T) {
	gm, p, cfg := openField()
	projs := []Projectile{{X: 96, Z: 50, VelX: 20, Owner: OwnerEnemy}}
	kept, _, walls := StepProjectiles(0.1, projs, p, gm, cfg)
	if walls != 1 || len(kept) != 0 {
		t.Fatal("leaving the grid counts as hitting a wall")
	}
}

func TestProjectiles_PlayerOwnedIgnoresPlayer(t *testing.T) {
	gm, p, cfg := openField()
	projs := []Projectile{{X: 50, Z: 49.5, VelZ: 1, Owner: OwnerPlayer}}
	kept, hits, _ := StepProjectiles(0.1, projs, p, gm, cfg)
	if hits != 0 || len(kept) != 1 {
		t.Fatal("player-owned projectiles never damage the player")
	}
	if p.Health != cfg.PlayerHealth {
		t.Fatalf("health=%d, want %d", p.Health, cfg.PlayerHealth)
	}
}

func TestProjectiles_MultipleHitsSameFrame(t *testing.T) {
	gm, p, cfg := openField()
	projs := []Projectile{
		{X: 50.5, Z: 50, Owner: OwnerEnemy},
		{X: 49.5, Z: 50, Owner: OwnerEnemy},
		{X: 50, Z: 50.2, Owner: OwnerEnemy},
	}
	_, hits, _ := StepProjectiles(0.016, projs, p, gm, cfg)
	if hits != 3 {
		t.Fatalf("hits=%d, want 3", hits)
	}
	if p.Health != cfg.PlayerHealth-3*cfg.ProjectileDamage {
		t.Fatalf("health=%d", p.Health)
	}
}
