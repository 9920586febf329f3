package services

import (
	"context"
	"math"
	"testing"
	"time"

	"darasa/config"
	"darasa/database"
	"darasa/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		DBDriver:              config.DriverSQLite,
		DatabaseURL:           ":memory:",
		JWTKey:                "unit-test-secret",
		TokenTTL:              time.Hour,
		SaltRound:             bcrypt.MinCost,
		EnforceCourseCategory: true,
		CategoryWritePolicy:   config.CategoryWritesAuthenticated,
	}
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.ConnectDb(testConfig())
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, HashedPassword: "x", Role: models.RoleUser}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createCourse(t *testing.T, db *gorm.DB, creatorID uint, title string, categoryID *uint) *models.Course {
	t.Helper()
	course := &models.Course{Title: title, Description: "desc", YoutubeURL: "https://youtube.com/" + title, CreatorID: creatorID, CategoryID: categoryID}
	require.NoError(t, db.Create(course).Error)
	return course
}

func assertKind(t *testing.T, err error, kind Kind) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, kind, KindOf(err), "unexpected error: %v", err)
}

func strPtr(s string) *string { return &s }

func TestCheckOwnership(t *testing.T) {
	assert.NoError(t, CheckOwnership(3, 3, "edit", "comment"))

	err := CheckOwnership(3, 4, "edit", "comment")
	assertKind(t, err, KindForbidden)
	assert.Equal(t, "Not allowed to edit this comment", err.(*Error).Detail)
}

func TestKindOfForeignError(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(assert.AnError))
	assert.Equal(t, KindConflict, KindOf(Conflict("x")))
}

func TestAuthRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, testConfig())
	ctx := context.Background()

	user, err := auth.Register(ctx, RegisterInput{Username: "alice", Password: "secret1", FullName: strPtr("Alice")})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.Equal(t, "Alice", *user.FullName)

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.NotEqual(t, "secret1", stored.HashedPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.HashedPassword), []byte("secret1")))

	_, err = auth.Register(ctx, RegisterInput{Username: "alice", Password: "other12"})
	assertKind(t, err, KindConflict)

	token, err := auth.Login(ctx, LoginInput{Username: "alice", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)
	assert.NotEmpty(t, token.AccessToken)

	_, err = auth.Login(ctx, LoginInput{Username: "alice", Password: "wrong"})
	assertKind(t, err, KindUnauthorized)

	_, err = auth.Login(ctx, LoginInput{Username: "nobody", Password: "secret1"})
	assertKind(t, err, KindUnauthorized)
}

func TestAuthVerify(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, testConfig())
	ctx := context.Background()
	createUser(t, db, "bob")

	token, err := auth.IssueToken("bob")
	require.NoError(t, err)
	user, err := auth.Verify(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "bob", user.Username)

	_, err = auth.Verify(ctx, "not-a-token")
	assertKind(t, err, KindUnauthorized)

	other := NewAuthService(db, &config.Config{JWTKey: "another-secret", TokenTTL: time.Hour})
	forged, err := other.IssueToken("bob")
	require.NoError(t, err)
	_, err = auth.Verify(ctx, forged)
	assertKind(t, err, KindUnauthorized)

	ghost, err := auth.IssueToken("ghost")
	require.NoError(t, err)
	_, err = auth.Verify(ctx, ghost)
	assertKind(t, err, KindUnauthorized)

	noSubject, err := auth.IssueToken("")
	require.NoError(t, err)
	_, err = auth.Verify(ctx, noSubject)
	assertKind(t, err, KindUnauthorized)
}

func TestAuthVerifyExpired(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, testConfig())
	createUser(t, db, "carol")

	auth.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := auth.IssueToken("carol")
	require.NoError(t, err)
	auth.now = time.Now

	_, err = auth.Verify(context.Background(), token)
	assertKind(t, err, KindUnauthorized)
}

func TestUserProfileAndPromote(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	ctx := context.Background()
	user := createUser(t, db, "dave")

	out, err := users.UpdateProfile(ctx, user.ID, ProfileInput{Username: strPtr("renamed"), Bio: strPtr("hello")})
	require.NoError(t, err)
	assert.Equal(t, "dave", out.Username)
	assert.Equal(t, "hello", *out.Bio)
	assert.Nil(t, out.FullName)

	promoted, err := users.Promote(ctx, "dave", "admin")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, promoted.Role)

	_, err = users.Promote(ctx, "nobody", models.RoleAdmin)
	assertKind(t, err, KindNotFound)

	_, err = users.Promote(ctx, "dave", "owner")
	assertKind(t, err, KindValidation)
}

func TestCategoryLifecycle(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryService(db)
	ctx := context.Background()
	user := createUser(t, db, "erin")
	c1 := createCourse(t, db, user.ID, "Go", nil)
	c2 := createCourse(t, db, user.ID, "SQL", nil)

	backend, err := categories.Create(ctx, CategoryInput{Name: "Backend", CourseIDs: []uint{c1.ID}})
	require.NoError(t, err)
	assert.Equal(t, []uint{c1.ID}, backend.Courses)

	_, err = categories.Create(ctx, CategoryInput{Name: "Backend"})
	assertKind(t, err, KindConflict)

	_, err = categories.Create(ctx, CategoryInput{Name: "Ghosts", CourseIDs: []uint{999}})
	assertKind(t, err, KindNotFound)

	frontend, err := categories.Create(ctx, CategoryInput{Name: "Frontend"})
	require.NoError(t, err)

	_, err = categories.Update(ctx, frontend.ID, CategoryUpdateInput{Name: strPtr("Backend")})
	assertKind(t, err, KindConflict)

	_, err = categories.Update(ctx, 999, CategoryUpdateInput{Name: strPtr("X")})
	assertKind(t, err, KindNotFound)

	updated, err := categories.Update(ctx, backend.ID, CategoryUpdateInput{
		Name:            strPtr("Backend"),
		Description:     strPtr("servers"),
		AddCourseIDs:    []uint{c2.ID},
		RemoveCourseIDs: []uint{c1.ID, 12345},
	})
	require.NoError(t, err)
	assert.Equal(t, []uint{c2.ID}, updated.Courses)
	assert.Equal(t, "servers", *updated.Description)

	_, err = categories.Update(ctx, backend.ID, CategoryUpdateInput{AddCourseIDs: []uint{c1.ID, 77, 78}})
	assertKind(t, err, KindNotFound)
	assert.Equal(t, "Courses not found: 77, 78", err.(*Error).Detail)

	detail, err := categories.Get(ctx, backend.ID)
	require.NoError(t, err)
	require.Len(t, detail.CourseList, 1)
	assert.Equal(t, "SQL", detail.CourseList[0].Title)
	require.NotNil(t, detail.CourseList[0].Creator)
	assert.Equal(t, "erin", detail.CourseList[0].Creator.Username)

	list, err := categories.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, categories.Delete(ctx, backend.ID))
	assertKind(t, categories.Delete(ctx, backend.ID), KindNotFound)

	var course models.Course
	require.NoError(t, db.First(&course, c2.ID).Error)
	assert.Nil(t, course.CategoryID)

	_, err = categories.Get(ctx, backend.ID)
	assertKind(t, err, KindNotFound)
}

func TestCourseCreateAndList(t *testing.T) {
	db := newTestDB(t)
	courses := NewCourseService(db, true)
	ctx := context.Background()
	user := createUser(t, db, "frank")
	cat := models.Category{Name: "Data"}
	require.NoError(t, db.Create(&cat).Error)

	created, err := courses.Create(ctx, user.ID, CourseInput{Title: "Intro to SQL", Description: "d", YoutubeURL: "u1", CategoryID: &cat.ID})
	require.NoError(t, err)
	assert.Equal(t, user.ID, created.CreatorID)
	require.NotNil(t, created.Category)
	assert.Equal(t, "Data", created.Category.Name)
	assert.Equal(t, "frank", created.Creator.Username)

	_, err = courses.Create(ctx, user.ID, CourseInput{Title: "Intro to SQL", Description: "again", YoutubeURL: "u1"})
	assertKind(t, err, KindConflict)

	missing := uint(404)
	_, err = courses.Create(ctx, user.ID, CourseInput{Title: "X", Description: "d", YoutubeURL: "u", CategoryID: &missing})
	assertKind(t, err, KindNotFound)

	_, err = courses.Create(ctx, user.ID, CourseInput{Title: "Advanced sql", Description: "d", YoutubeURL: "u2"})
	require.NoError(t, err)
	_, err = courses.Create(ctx, user.ID, CourseInput{Title: "Go basics", Description: "d", YoutubeURL: "u3", CategoryID: &cat.ID})
	require.NoError(t, err)

	found, err := courses.List(ctx, CourseListQuery{Page: 1, PageSize: 10, Search: "SQL"})
	require.NoError(t, err)
	assert.Len(t, found, 2)

	inCategory, err := courses.List(ctx, CourseListQuery{Page: 1, PageSize: 10, CategoryID: &cat.ID})
	require.NoError(t, err)
	assert.Len(t, inCategory, 2)

	page2, err := courses.List(ctx, CourseListQuery{Page: 2, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, "Go basics", page2[0].Title)

	farPage, err := courses.List(ctx, CourseListQuery{Page: math.MaxInt, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, farPage)
}

func TestCourseUpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	courses := NewCourseService(db, true)
	ctx := context.Background()
	owner := createUser(t, db, "gina")
	other := createUser(t, db, "hank")
	first := createCourse(t, db, owner.ID, "First", nil)
	second := createCourse(t, db, owner.ID, "Second", nil)

	_, err := courses.Update(ctx, owner.ID, first.ID, CourseInput{Title: second.Title, Description: "d", YoutubeURL: second.YoutubeURL})
	assertKind(t, err, KindConflict)

	_, err = courses.Update(ctx, other.ID, first.ID, CourseInput{Title: "Hijack", Description: "d", YoutubeURL: "x"})
	assertKind(t, err, KindForbidden)

	_, err = courses.Update(ctx, owner.ID, 999, CourseInput{Title: "T", Description: "d", YoutubeURL: "x"})
	assertKind(t, err, KindNotFound)

	updated, err := courses.Update(ctx, owner.ID, first.ID, CourseInput{Title: "First (2nd ed.)", Description: "new", YoutubeURL: first.YoutubeURL})
	require.NoError(t, err)
	assert.Equal(t, "First (2nd ed.)", updated.Title)
	assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))

	require.NoError(t, db.Create(&models.Comment{Content: "c", UserID: other.ID, CourseID: first.ID}).Error)
	require.NoError(t, db.Create(&models.Rating{Value: 3, UserID: other.ID, CourseID: first.ID}).Error)

	assertKind(t, courses.Delete(ctx, other.ID, first.ID), KindForbidden)
	require.NoError(t, courses.Delete(ctx, owner.ID, first.ID))
	assertKind(t, courses.Delete(ctx, owner.ID, first.ID), KindNotFound)

	var comments, ratings int64
	db.Model(&models.Comment{}).Where("course_id = ?", first.ID).Count(&comments)
	db.Model(&models.Rating{}).Where("course_id = ?", first.ID).Count(&ratings)
	assert.Zero(t, comments)
	assert.Zero(t, ratings)

	_, err = courses.Get(ctx, first.ID)
	assertKind(t, err, KindNotFound)
}

func TestComments(t *testing.T) {
	db := newTestDB(t)
	comments := NewCommentService(db)
	ctx := context.Background()
	author := createUser(t, db, "ivy")
	other := createUser(t, db, "jack")
	course := createCourse(t, db, author.ID, "Course", nil)

	_, err := comments.Add(ctx, author.ID, 999, CommentInput{Content: "hi"})
	assertKind(t, err, KindNotFound)

	c, err := comments.Add(ctx, author.ID, course.ID, CommentInput{Content: "hi"})
	require.NoError(t, err)
	assert.Equal(t, course.ID, c.CourseID)

	_, err = comments.Edit(ctx, other.ID, course.ID, c.ID, CommentInput{Content: "mine now"})
	assertKind(t, err, KindForbidden)
	assertKind(t, comments.Delete(ctx, other.ID, course.ID, c.ID), KindForbidden)

	_, err = comments.Get(ctx, course.ID+1, c.ID)
	assertKind(t, err, KindNotFound)

	edited, err := comments.Edit(ctx, author.ID, course.ID, c.ID, CommentInput{Content: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", edited.Content)
	assert.Equal(t, c.ID, edited.ID)

	list, err := comments.List(ctx, course.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "edited", list[0].Content)

	require.NoError(t, comments.Delete(ctx, author.ID, course.ID, c.ID))
	_, err = comments.Get(ctx, course.ID, c.ID)
	assertKind(t, err, KindNotFound)
}

func TestRatingUpsert(t *testing.T) {
	db := newTestDB(t)
	ratings := NewRatingService(db)
	users := NewUserService(db)
	ctx := context.Background()
	rater := createUser(t, db, "kate")
	other := createUser(t, db, "liam")
	course := createCourse(t, db, other.ID, "Course", nil)

	_, err := ratings.Rate(ctx, rater.ID, 999, RatingInput{Value: 4})
	assertKind(t, err, KindNotFound)

	first, err := ratings.Rate(ctx, rater.ID, course.ID, RatingInput{Value: 4})
	require.NoError(t, err)
	second, err := ratings.Rate(ctx, rater.ID, course.ID, RatingInput{Value: 2})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2, second.Value)

	_, err = ratings.Rate(ctx, other.ID, course.ID, RatingInput{Value: 5})
	require.NoError(t, err)

	list, err := ratings.List(ctx, course.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	mine, err := users.RatingsByUser(ctx, rater.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, 2, mine[0].Value)

	assertKind(t, ratings.Delete(ctx, other.ID, course.ID, first.ID), KindForbidden)
	assertKind(t, ratings.Delete(ctx, rater.ID, course.ID+1, first.ID), KindNotFound)
	require.NoError(t, ratings.Delete(ctx, rater.ID, course.ID, first.ID))
	assertKind(t, ratings.Delete(ctx, rater.ID, course.ID, first.ID), KindNotFound)
}

func TestRatingRetryConflict(t *testing.T) {
	db := newTestDB(t)
	ratings := NewRatingService(db)
	ctx := context.Background()
	rater := createUser(t, db, "mona")
	course := createCourse(t, db, rater.ID, "Course", nil)

	// every rating insert loses to a concurrent writer
	err := db.Callback().Create().Before("gorm:create").Register("test:rating_race", func(tx *gorm.DB) {
		if tx.Statement.Table == "ratings" {
			tx.AddError(gorm.ErrDuplicatedKey)
		}
	})
	require.NoError(t, err)

	_, err = ratings.Rate(ctx, rater.ID, course.ID, RatingInput{Value: 3})
	assertKind(t, err, KindConflict)
	assert.Equal(t, ratingConflict, err.(*Error).Detail)
}
