// Package seed populates the database with realistic development data.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"tandem/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options controls what the seeder creates.
type Options struct {
	Users           int
	FriendshipRatio float64 // fraction of user pairs that end up friends
	PendingRequests int
	Clean           bool
}

// DefaultOptions is a reasonable dataset for local development.
var DefaultOptions = Options{
	Users:           40,
	FriendshipRatio: 0.1,
	PendingRequests: 15,
	Clean:           true,
}

var languages = []string{
	"English", "Spanish", "French", "German", "Mandarin",
	"Japanese", "Korean", "Portuguese", "Italian", "Russian",
	"Arabic", "Hindi", "Turkish", "Dutch", "Swedish",
}

// Seed populates the database according to opts.
func Seed(db *gorm.DB, opts Options) error {
	gofakeit.Seed(time.Now().UnixNano())

	if opts.Clean {
		if err := clearData(db); err != nil {
			return fmt.Errorf("cleanup failed: %w", err)
		}
	}

	users, err := createUsers(db, opts.Users)
	if err != nil {
		return fmt.Errorf("user seeding failed: %w", err)
	}
	log.Printf("Created %d users", len(users))

	friendships, err := createFriendships(db, users, opts.FriendshipRatio)
	if err != nil {
		return fmt.Errorf("friendship seeding failed: %w", err)
	}
	log.Printf("Created %d friendships", friendships)

	pending, err := createPendingRequests(db, users, opts.PendingRequests)
	if err != nil {
		return fmt.Errorf("pending request seeding failed: %w", err)
	}
	log.Printf("Created %d pending friend requests", pending)

	return nil
}

func clearData(db *gorm.DB) error {
	for _, table := range []string{"friend_requests", "user_friends", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

// seedPassword is the shared login password for all seeded accounts.
const seedPassword = "password123"

func createUsers(db *gorm.DB, count int) ([]models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		native := languages[rand.Intn(len(languages))]
		learning := languages[rand.Intn(len(languages))]
		for learning == native {
			learning = languages[rand.Intn(len(languages))]
		}

		user := models.User{
			FullName:         gofakeit.Name(),
			Email:            gofakeit.Email(),
			Password:         string(hashed),
			ProfilePic:       fmt.Sprintf("https://avatar.iran.liara.run/public/%d.png", rand.Intn(100)+1),
			Bio:              gofakeit.Sentence(10),
			NativeLanguage:   native,
			LearningLanguage: learning,
			Location:         fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.Country()),
			IsOnboarded:      true,
		}
		if err := db.Create(&user).Error; err != nil {
			// Duplicate fake email; skip and keep going.
			continue
		}
		users = append(users, user)
	}
	return users, nil
}

// createFriendships records accepted requests plus the symmetric friendship
// rows, mirroring what acceptance does at runtime.
func createFriendships(db *gorm.DB, users []models.User, ratio float64) (int, error) {
	created := 0
	for i := range users {
		for j := i + 1; j < len(users); j++ {
			if rand.Float64() >= ratio {
				continue
			}
			request := models.FriendRequest{
				SenderID:    users[i].ID,
				RecipientID: users[j].ID,
				Status:      models.FriendRequestAccepted,
			}
			if err := db.Create(&request).Error; err != nil {
				continue
			}
			edges := []models.UserFriend{
				{UserID: users[i].ID, FriendID: users[j].ID},
				{UserID: users[j].ID, FriendID: users[i].ID},
			}
			if err := db.Create(&edges).Error; err != nil {
				return created, err
			}
			created++
		}
	}
	return created, nil
}

func createPendingRequests(db *gorm.DB, users []models.User, count int) (int, error) {
	if len(users) < 2 {
		return 0, nil
	}

	created := 0
	attempts := 0
	for created < count && attempts < count*10 {
		attempts++
		sender := users[rand.Intn(len(users))]
		recipient := users[rand.Intn(len(users))]
		if sender.ID == recipient.ID {
			continue
		}

		request := models.FriendRequest{
			SenderID:    sender.ID,
			RecipientID: recipient.ID,
			Status:      models.FriendRequestPending,
		}
		// Unique pair index rejects pairs that already have a request or
		// friendship; just try another pair.
		if err := db.Create(&request).Error; err != nil {
			continue
		}
		created++
	}
	return created, nil
}
