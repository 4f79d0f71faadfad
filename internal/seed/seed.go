// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"ripple/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options controls the amount of demo data generated.
type Options struct {
	Users        int
	PostsPerUser int
	// FollowRatio is the probability that any ordered user pair gets a
	// follow edge.
	FollowRatio float64
	// Password is the shared plaintext password for every seeded account.
	Password string
}

// DefaultOptions is a small data set suitable for local development.
func DefaultOptions() Options {
	return Options{
		Users:        25,
		PostsPerUser: 8,
		FollowRatio:  0.15,
		Password:     "password123",
	}
}

var avatarEmojis = []string{"🐙", "🦊", "🐸", "🦉", "🐼", "🌊", "🔥", "🌵", "🍄", "🚀", "🎧", "☕"}

// Run populates the database with users, a follow mesh, posts, likes,
// reposts and comments. It is idempotent enough for repeated dev runs
// because usernames are suffixed with a random run tag.
func Run(db *gorm.DB, opts Options) error {
	gofakeit.Seed(time.Now().UnixNano())
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	runTag := gofakeit.LetterN(4)

	hash, err := bcrypt.GenerateFromPassword([]byte(opts.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		username := strings.ToLower(fmt.Sprintf("%s_%s%d", gofakeit.Username(), runTag, i))
		if len(username) > 30 {
			username = username[:30]
		}
		user := &models.User{
			Username:    username,
			Email:       strings.ToLower(fmt.Sprintf("%s.%s%d@%s", gofakeit.Word(), runTag, i, gofakeit.DomainName())),
			Password:    string(hash),
			DisplayName: gofakeit.Name(),
			Bio:         gofakeit.Sentence(8),
			AvatarEmoji: avatarEmojis[r.Intn(len(avatarEmojis))],
		}
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("seeded %d users", len(users))

	var posts []*models.Post
	for _, user := range users {
		for i := 0; i < opts.PostsPerUser; i++ {
			post := &models.Post{
				UserID:    user.ID,
				Content:   clampContent(gofakeit.Sentence(12 + r.Intn(20))),
				CreatedAt: randomPastTime(r, 60),
			}
			if err := db.Create(post).Error; err != nil {
				return fmt.Errorf("seed post: %w", err)
			}
			posts = append(posts, post)
		}
	}
	log.Printf("seeded %d posts", len(posts))

	follows := 0
	for _, follower := range users {
		for _, following := range users {
			if follower.ID == following.ID || r.Float64() >= opts.FollowRatio {
				continue
			}
			follow := &models.Follow{FollowerID: follower.ID, FollowingID: following.ID}
			if err := db.Create(follow).Error; err != nil {
				return fmt.Errorf("seed follow: %w", err)
			}
			follows++
		}
	}
	log.Printf("seeded %d follows", follows)

	likes, reposts, comments := 0, 0, 0
	for _, post := range posts {
		for _, user := range users {
			if r.Float64() < 0.2 {
				if err := db.Create(&models.Like{UserID: user.ID, PostID: post.ID}).Error; err != nil {
					return fmt.Errorf("seed like: %w", err)
				}
				likes++
			}
			if r.Float64() < 0.05 {
				if err := db.Create(&models.Repost{UserID: user.ID, PostID: post.ID}).Error; err != nil {
					return fmt.Errorf("seed repost: %w", err)
				}
				reposts++
			}
			if r.Float64() < 0.08 {
				comment := &models.Comment{
					UserID:  user.ID,
					PostID:  post.ID,
					Content: clampContent(gofakeit.Sentence(6 + r.Intn(12))),
				}
				if err := db.Create(comment).Error; err != nil {
					return fmt.Errorf("seed comment: %w", err)
				}
				comments++
			}
		}
	}
	log.Printf("seeded %d likes, %d reposts, %d comments", likes, reposts, comments)

	return nil
}

func clampContent(s string) string {
	runes := []rune(s)
	if len(runes) > models.MaxContentLen {
		return string(runes[:models.MaxContentLen])
	}
	return s
}

func randomPastTime(r *rand.Rand, maxDays int) time.Time {
	daysBack := r.Intn(maxDays)
	hoursBack := r.Intn(24)
	minsBack := r.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour -
		time.Duration(minsBack)*time.Minute)
}
