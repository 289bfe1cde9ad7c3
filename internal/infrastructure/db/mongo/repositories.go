// Package mongo implements the repository ports on MongoDB, the
// multi-operator alternative to the default flat-file backend. Natural
// keys (username, canonical SteamID) are the document ids, so uniqueness
// is enforced by the collection itself.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gameops/ticket-board/internal/core/domain"
)

const (
	usersCollection       = "users"
	playersCollection     = "players"
	supervisorsCollection = "supervisors"
	statusesCollection    = "statuses"
)

// UserRepository implements ports.UserRepository.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

type userDoc struct {
	Username     string `bson:"_id"`
	PasswordHash string `bson:"password_hash"`
	Role         string `bson:"role"`
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": username}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &domain.User{
		Username:     doc.Username,
		PasswordHash: doc.PasswordHash,
		Role:         domain.Role(doc.Role),
	}, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	doc := userDoc{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, username string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": username})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// PlayerRepository implements ports.PlayerRepository.
type PlayerRepository struct {
	coll *mongo.Collection
}

func NewPlayerRepository(db *mongo.Database) *PlayerRepository {
	return &PlayerRepository{coll: db.Collection(playersCollection)}
}

type playerDoc struct {
	SteamID    string `bson:"_id"`
	Name       string `bson:"name"`
	Discord    string `bson:"discord"`
	Supervisor string `bson:"supervisor"`
}

func (r *PlayerRepository) FindBySteamID(ctx context.Context, steamID string) (*domain.Player, error) {
	var doc playerDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": steamID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("find player: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PlayerRepository) Create(ctx context.Context, player *domain.Player) error {
	doc := playerDoc{
		SteamID:    player.SteamID,
		Name:       player.Name,
		Discord:    player.Discord,
		Supervisor: player.Supervisor,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrPlayerExists
		}
		return fmt.Errorf("insert player: %w", err)
	}
	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, steamID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": steamID})
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

func (r *PlayerRepository) List(ctx context.Context, supervisor string) ([]domain.Player, error) {
	filter := bson.M{}
	if supervisor != "" {
		filter["supervisor"] = supervisor
	}

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer cur.Close(ctx)

	var players []domain.Player
	for cur.Next(ctx) {
		var doc playerDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode player: %w", err)
		}
		players = append(players, *doc.toDomain())
	}
	return players, cur.Err()
}

func (d playerDoc) toDomain() *domain.Player {
	return &domain.Player{
		SteamID:    d.SteamID,
		Name:       d.Name,
		Discord:    d.Discord,
		Supervisor: d.Supervisor,
	}
}

// EnsureIndexes creates the secondary index used by per-supervisor listing.
func (r *PlayerRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "supervisor", Value: 1}},
	})
	return err
}

// SupervisorRepository implements ports.SupervisorRepository. Insertion
// order is preserved through the added_at field.
type SupervisorRepository struct {
	coll *mongo.Collection
}

func NewSupervisorRepository(db *mongo.Database) *SupervisorRepository {
	return &SupervisorRepository{coll: db.Collection(supervisorsCollection)}
}

type supervisorDoc struct {
	Username string    `bson:"_id"`
	AddedAt  time.Time `bson:"added_at"`
}

func (r *SupervisorRepository) List(ctx context.Context) ([]string, error) {
	opts := options.Find().SetSort(bson.D{{Key: "added_at", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list supervisors: %w", err)
	}
	defer cur.Close(ctx)

	var names []string
	for cur.Next(ctx) {
		var doc supervisorDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode supervisor: %w", err)
		}
		names = append(names, doc.Username)
	}
	return names, cur.Err()
}

func (r *SupervisorRepository) Exists(ctx context.Context, username string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": username})
	if err != nil {
		return false, fmt.Errorf("count supervisor: %w", err)
	}
	return n > 0, nil
}

func (r *SupervisorRepository) Add(ctx context.Context, username string) error {
	doc := supervisorDoc{Username: username, AddedAt: time.Now().UTC()}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrSupervisorExists
		}
		return fmt.Errorf("insert supervisor: %w", err)
	}
	return nil
}

func (r *SupervisorRepository) Remove(ctx context.Context, username string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": username})
	if err != nil {
		return fmt.Errorf("delete supervisor: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSupervisorNotFound
	}
	return nil
}

// StatusRepository implements ports.StatusRepository.
type StatusRepository struct {
	coll *mongo.Collection
}

func NewStatusRepository(db *mongo.Database) *StatusRepository {
	return &StatusRepository{coll: db.Collection(statusesCollection)}
}

type statusDoc struct {
	SteamID   string `bson:"_id"`
	Status    string `bson:"status"`
	EndDate   string `bson:"end_date"`
	ReturnDay string `bson:"return_day,omitempty"`
}

func (r *StatusRepository) Find(ctx context.Context, steamID string) (*domain.Status, error) {
	var doc statusDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": steamID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrStatusNotFound
		}
		return nil, fmt.Errorf("find status: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *StatusRepository) Set(ctx context.Context, status *domain.Status) error {
	doc := statusDoc{
		SteamID:   status.SteamID,
		Status:    string(status.Kind),
		EndDate:   status.EndDate,
		ReturnDay: status.ReturnDay,
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": status.SteamID}, doc, opts); err != nil {
		return fmt.Errorf("set status: %w", err)
	}
	return nil
}

func (r *StatusRepository) Delete(ctx context.Context, steamID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": steamID})
	if err != nil {
		return fmt.Errorf("delete status: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrStatusNotFound
	}
	return nil
}

func (r *StatusRepository) DeleteBatch(ctx context.Context, steamIDs []string) error {
	if len(steamIDs) == 0 {
		return nil
	}
	if _, err := r.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": steamIDs}}); err != nil {
		return fmt.Errorf("delete statuses: %w", err)
	}
	return nil
}

func (r *StatusRepository) List(ctx context.Context) ([]domain.Status, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list statuses: %w", err)
	}
	defer cur.Close(ctx)

	var statuses []domain.Status
	for cur.Next(ctx) {
		var doc statusDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode status: %w", err)
		}
		statuses = append(statuses, *doc.toDomain())
	}
	return statuses, cur.Err()
}

func (d statusDoc) toDomain() *domain.Status {
	return &domain.Status{
		SteamID:   d.SteamID,
		Kind:      domain.StatusKind(d.Status),
		EndDate:   d.EndDate,
		ReturnDay: d.ReturnDay,
	}
}
