// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"cheznous/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DemoPassword is the password shared by all seeded accounts.
const DemoPassword = "Akwaba-2024!ci"

// Seeder populates the database with demo users, forums and content.
type Seeder struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewSeeder creates a new Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes all seeded content. Categories are kept because they are
// a fixed taxonomy, not demo data.
func (s *Seeder) ClearAll() error {
	tables := []string{"reactions", "favorites", "comments", "posts", "forum_members", "forums", "users"}
	for _, table := range tables {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	log.Println("Cleared all demo tables")
	return nil
}

// SeedUsers creates n demo accounts sharing DemoPassword.
func (s *Seeder) SeedUsers(n int) ([]*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user := &models.User{
			Username:  fmt.Sprintf("%s%d", gofakeit.Username(), i),
			Email:     fmt.Sprintf("user%d@%s", i, gofakeit.DomainName()),
			Password:  string(hash),
			Bio:       gofakeit.Sentence(8),
			Location:  gofakeit.City(),
			AvatarURL: fmt.Sprintf("https://picsum.photos/seed/%s/200/200", uuid.NewString()[:8]),
		}
		if err := s.db.Create(user).Error; err != nil {
			return nil, fmt.Errorf("create user %d: %w", i, err)
		}
		users = append(users, user)
	}
	log.Printf("Seeded %d users", len(users))
	return users, nil
}

// SeedForums creates n forums with creators drawn from users. Roughly one in
// three is private. Every creator gets an admin membership and each forum a
// handful of extra members.
func (s *Seeder) SeedForums(users []*models.User, n int) ([]*models.Forum, error) {
	var categories []models.Category
	if err := s.db.Find(&categories).Error; err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("no categories present, run Categories first")
	}

	forums := make([]*models.Forum, 0, n)
	for i := 0; i < n; i++ {
		creator := users[s.rng.Intn(len(users))]
		forum := &models.Forum{
			Title:       gofakeit.Sentence(4),
			Description: gofakeit.Paragraph(1, 2, 8, " "),
			CreatorID:   creator.ID,
			MemberLimit: models.MemberLimitDefault,
		}
		if i%3 == 0 {
			forum.IsPrivate = true
			code := uuid.NewString()
			forum.AccessCode = &code
		} else {
			categoryID := categories[s.rng.Intn(len(categories))].ID
			forum.CategoryID = &categoryID
		}

		if err := s.db.Create(forum).Error; err != nil {
			return nil, fmt.Errorf("create forum %d: %w", i, err)
		}
		if err := s.db.Create(&models.ForumMember{
			ForumID: forum.ID, UserID: creator.ID, IsAdmin: true,
		}).Error; err != nil {
			return nil, err
		}

		for _, member := range s.pickUsers(users, 2+s.rng.Intn(6)) {
			if member.ID == creator.ID {
				continue
			}
			if err := s.db.Create(&models.ForumMember{
				ForumID: forum.ID, UserID: member.ID,
			}).Error; err != nil {
				return nil, err
			}
		}
		forums = append(forums, forum)
	}
	log.Printf("Seeded %d forums", len(forums))
	return forums, nil
}

// SeedEngagement fills forums with posts, comments, reactions and favorites.
func (s *Seeder) SeedEngagement(users []*models.User, forums []*models.Forum, postsPerForum int) error {
	posts := 0
	for _, forum := range forums {
		members, err := s.forumMembers(forum.ID, users)
		if err != nil {
			return err
		}
		if len(members) == 0 {
			continue
		}

		for i := 0; i < postsPerForum; i++ {
			author := members[s.rng.Intn(len(members))]
			post := &models.Post{
				ForumID:     forum.ID,
				AuthorID:    author.ID,
				Title:       gofakeit.Sentence(5),
				Content:     gofakeit.Paragraph(2, 3, 10, "\n"),
				IsAnonymous: s.rng.Intn(10) == 0,
				CreatedAt:   s.pastTimestamp(60),
			}
			if err := s.db.Create(post).Error; err != nil {
				return fmt.Errorf("create post: %w", err)
			}
			posts++

			for j := 0; j < s.rng.Intn(5); j++ {
				commenter := members[s.rng.Intn(len(members))]
				if err := s.db.Create(&models.Comment{
					PostID:    post.ID,
					AuthorID:  commenter.ID,
					Content:   gofakeit.Sentence(10),
					CreatedAt: post.CreatedAt.Add(time.Duration(j+1) * time.Hour),
				}).Error; err != nil {
					return fmt.Errorf("create comment: %w", err)
				}
			}

			for _, reactor := range s.pickUsers(members, s.rng.Intn(len(members)+1)) {
				kind := models.ReactionLike
				if s.rng.Intn(4) == 0 {
					kind = models.ReactionDislike
				}
				if err := s.db.Create(&models.Reaction{
					UserID:      reactor.ID,
					Type:        kind,
					ContentType: models.ReactionTargetPost,
					ContentID:   post.ID,
				}).Error; err != nil {
					return fmt.Errorf("create reaction: %w", err)
				}
			}

			if s.rng.Intn(3) == 0 {
				fan := members[s.rng.Intn(len(members))]
				if err := s.db.Create(&models.Favorite{
					UserID: fan.ID,
					Type:   models.FavoriteTypePost,
					ItemID: post.ID,
				}).Error; err != nil {
					return fmt.Errorf("create favorite: %w", err)
				}
			}
		}
	}
	log.Printf("Seeded %d posts with comments, reactions and favorites", posts)
	return nil
}

// forumMembers returns the subset of users who belong to the forum.
func (s *Seeder) forumMembers(forumID uint, users []*models.User) ([]*models.User, error) {
	var rows []models.ForumMember
	if err := s.db.Where("forum_id = ?", forumID).Find(&rows).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]*models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	members := make([]*models.User, 0, len(rows))
	for _, row := range rows {
		if u, ok := byID[row.UserID]; ok {
			members = append(members, u)
		}
	}
	return members, nil
}

// pickUsers returns up to n distinct users in random order.
func (s *Seeder) pickUsers(users []*models.User, n int) []*models.User {
	if n > len(users) {
		n = len(users)
	}
	idx := s.rng.Perm(len(users))
	picked := make([]*models.User, 0, n)
	for _, i := range idx[:n] {
		picked = append(picked, users[i])
	}
	return picked
}

func (s *Seeder) pastTimestamp(maxDays int) time.Time {
	return time.Now().
		Add(-time.Duration(s.rng.Intn(maxDays)) * 24 * time.Hour).
		Add(-time.Duration(s.rng.Intn(24)) * time.Hour).
		Add(-time.Duration(s.rng.Intn(60)) * time.Minute)
}
