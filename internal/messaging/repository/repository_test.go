package repository

import (
	"context"
	"database/sql"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"courier/internal/messaging/model"
	userModel "courier/internal/user/model"
	"courier/pkg/logger"
)

var (
	testDB      *bun.DB
	pgContainer *postgres.PostgresContainer
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	dbName := "courier"
	dbUser := "courier"
	dbPassword := "password"

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Printf("failed to start container: %s", err)
		return
	}
	pgContainer = postgresContainer

	defer func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}()

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable", "application_name=test")
	if err != nil {
		log.Printf("failed to get connections string, %v", err)
	}

	connector := pgdriver.NewConnector(pgdriver.WithDSN(connStr))
	sqlDB := sql.OpenDB(connector)
	testDB = bun.NewDB(sqlDB, pgdialect.New())

	if err := sqlDB.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}

	tables := []any{
		(*userModel.User)(nil),
		(*model.Conversation)(nil),
		(*model.Message)(nil),
		(*model.ConversationHead)(nil),
	}

	for _, t := range tables {
		if _, err := testDB.NewCreateTable().Model(t).IfNotExists().Exec(ctx); err != nil {
			testDB.Close()
			log.Fatalf("failed to create table for %T: %v", t, err)
		}
	}

	code := m.Run()

	testDB.Close()

	os.Exit(code)
}

func cleanupTables(t *testing.T) {
	t.Cleanup(func() {
		_, err := testDB.ExecContext(context.Background(),
			`TRUNCATE TABLE messages, conversation_heads, conversations RESTART IDENTITY CASCADE`)
		require.NoError(t, err)
	})
}

func newTestMessage(sender, recipient uuid.UUID, subject string) *model.Message {
	return &model.Message{
		SenderID:    sender,
		RecipientID: &recipient,
		Subject:     subject,
		Body:        "Body Text",
	}
}

func headsFor(t *testing.T, conversationID uuid.UUID) []model.ConversationHead {
	t.Helper()
	var heads []model.ConversationHead
	err := testDB.NewSelect().
		Model(&heads).
		Where("conversation_id = ?", conversationID).
		Scan(context.Background())
	require.NoError(t, err)
	return heads
}

func reloadMessage(t *testing.T, id uuid.UUID) *model.Message {
	t.Helper()
	msg := new(model.Message)
	err := testDB.NewSelect().Model(msg).Where("id = ?", id).Scan(context.Background())
	require.NoError(t, err)
	return msg
}

func Test_CreateMessage_AssignsFreshConversation(t *testing.T) {
	cleanupTables(t)
	repo := NewMessageRepository(testDB, logger.Logger{})
	user1, user2 := uuid.New(), uuid.New()

	msg1 := newTestMessage(user1, user2, "Subject Text")
	require.NoError(t, repo.CreateMessage(context.Background(), msg1))
	assert.NotEqual(t, uuid.Nil, msg1.ConversationID)
	assert.False(t, msg1.SentAt.IsZero())

	msg2 := newTestMessage(user1, user2, "Other Subject")
	require.NoError(t, repo.CreateMessage(context.Background(), msg2))
	assert.NotEqual(t, msg1.ConversationID, msg2.ConversationID,
		"every non-reply message should get a different conversation id")
}

func Test_CreateMessage_ReplyInheritsConversation(t *testing.T) {
	cleanupTables(t)
	repo := NewMessageRepository(testDB, logger.Logger{})
	user1, user2 := uuid.New(), uuid.New()

	root := newTestMessage(user1, user2, "Subject Text")
	require.NoError(t, repo.CreateMessage(context.Background(), root))

	reply := newTestMessage(user2, user1, "Re: Subject Text")
	reply.ParentID = &root.ID
	require.NoError(t, repo.CreateMessage(context.Background(), reply))
	assert.Equal(t, root.ConversationID, reply.ConversationID)

	replyToReply := newTestMessage(user1, user2, "Re: Subject Text")
	replyToReply.ParentID = &reply.ID
	require.NoError(t, repo.CreateMessage(context.Background(), replyToReply))
	assert.Equal(t, root.ConversationID, replyToReply.ConversationID,
		"every message in a chain shares the conversation of its root")
}

func Test_CreateMessage_MissingParent(t *testing.T) {
	cleanupTables(t)
	repo := NewMessageRepository(testDB, logger.Logger{})
	user1, user2 := uuid.New(), uuid.New()

	orphanID := uuid.New()
	msg := newTestMessage(user1, user2, "Subject Text")
	msg.ParentID = &orphanID

	err := repo.CreateMessage(context.Background(), msg)
	require.ErrorIs(t, err, ErrParentNotFound)

	count, err := testDB.NewSelect().Model((*model.Message)(nil)).Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count, "failed create must not leave a partial message behind")
}

func Test_CreateMessage_SyncsBothHeads(t *testing.T) {
	cleanupTables(t)
	repo := NewMessageRepository(testDB, logger.Logger{})
	user1, user2 := uuid.New(), uuid.New()

	msg := newTestMessage(user1, user2, "Subject Text")
	require.NoError(t, repo.CreateMessage(context.Background(), msg))

	heads := headsFor(t, msg.ConversationID)
	require.Len(t, heads, 2)
	seen := map[uuid.UUID]bool{}
	for _, h := range heads {
		assert.Equal(t, msg.ID, h.LatestMessageID)
		assert.False(t, h.MarkedAsDeleted)
		seen[h.UserID] = true
	}
	assert.True(t, seen[user1])
	assert.True(t, seen[user2])
}

func Test_CreateMessage_SelfMessageSingleHead(t *testing.T) {
	cleanupTables(t)
	repo := NewMessageRepository(testDB, logger.Logger{})
	user1 := uuid.New()

	msg := newTestMessage(user1, user1, "Note to self")
	require.NoError(t, repo.CreateMessage(context.Background(), msg))

	heads := headsFor(t, msg.ConversationID)
	require.Len(t, heads, 1, "sender == recipient must be deduplicated to one head")
	assert.Equal(t, user1, heads[0].UserID)
}

func Test_Reply_RepointsHeadAndRevives(t *testing.T) {
	cleanupTables(t)
	repo := NewMessageRepository(testDB, logger.Logger{})
	user1, user2 := uuid.New(), uuid.New()

	msg := newTestMessage(user1, user2, "Subject Text")
	require.NoError(t, repo.CreateMessage(context.Background(), msg))

	// user2 trashes the thread, then user1 writes again
	head, err := repo.GetConversationHead(context.Background(), user2, msg.ConversationID)
	require.NoError(t, err)
	require.NoError(t, repo.MarkConversationDeleted(context.Background(), head))

	followUp := newTestMessage(user1, user2, "Subject Text")
	followUp.ParentID = &msg.ID
	require.NoError(t, repo.CreateMessage(context.Background(), followUp))

	heads := headsFor(t, msg.ConversationID)
	require.Len(t, heads, 2, "a new message must never create a duplicate head")
	for _, h := range heads {
		assert.Equal(t, followUp.ID, h.LatestMessageID)
		assert.False(t, h.MarkedAsDeleted, "a new message revives a trashed conversation view")
	}
}

func Test_TwoUserReplyScenario(t *testing.T) {
	cleanupTables(t)
	repo := NewMessageRepository(testDB, logger.Logger{})
	user1, user2 := uuid.New(), uuid.New()

	msg := newTestMessage(user1, user2, "Subject Text")
	require.NoError(t, repo.CreateMessage(context.Background(), msg))

	reply := newTestMessage(user2, user1, "Re: Subject Text")
	reply.ParentID = &msg.ID
	require.NoError(t, repo.CreateMessage(context.Background(), reply))

	count, err := testDB.NewSelect().Model((*model.ConversationHead)(nil)).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	for _, u := range []uuid.UUID{user1, user2} {
		head, err := repo.GetConversationHead(context.Background(), u, msg.ConversationID)
		require.NoError(t, err)
		assert.Equal(t, reply.ID, head.LatestMessageID)
		assert.False(t, head.MarkedAsDeleted)
	}
}

func Test_FanOutScenario(t *testing.T) {
	cleanupTables(t)
	repo := NewMessageRepository(testDB, logger.Logger{})
	user1, user2, user3 := uuid.New(), uuid.New(), uuid.New()

	first := newTestMessage(user1, user2, "Subject Text")
	require.NoError(t, repo.CreateMessage(context.Background(), first))

	// fan-out pins the second copy to the conversation the first one created
	second := newTestMessage(user1, user3, "Subject Text")
	second.ConversationID = first.ConversationID
	require.NoError(t, repo.CreateMessage(context.Background(), second))

	assert.Equal(t, first.ConversationID, second.ConversationID)

	heads := headsFor(t, first.ConversationID)
	assert.Len(t, heads, 3, "sender + two recipients")
}

func Test_ConcurrentHeadUpsert(t *testing.T) {
	cleanupTables(t)
	repo := NewMessageRepository(testDB, logger.Logger{})
	user1, user2 := uuid.New(), uuid.New()

	root := newTestMessage(user1, user2, "Subject Text")
	require.NoError(t, repo.CreateMessage(context.Background(), root))

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			msg := newTestMessage(user1, user2, "Subject Text")
			msg.ConversationID = root.ConversationID
			errs[i] = repo.CreateMessage(context.Background(), msg)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err, "the head upsert must absorb the unique-constraint race")
	}
	heads := headsFor(t, root.ConversationID)
	assert.Len(t, heads, 2)
}

func Test_MarkConversationDeleted(t *testing.T) {
	cleanupTables(t)
	repo := NewMessageRepository(testDB, logger.Logger{})
	user1, user2 := uuid.New(), uuid.New()

	msg1 := newTestMessage(user1, user2, "Subject Text 1")
	require.NoError(t, repo.CreateMessage(context.Background(), msg1))

	msg2 := newTestMessage(user2, user1, "Re: Subject Text 1")
	msg2.ParentID = &msg1.ID
	require.NoError(t, repo.CreateMessage(context.Background(), msg2))

	head, err := repo.GetConversationHead(context.Background(), user1, msg1.ConversationID)
	require.NoError(t, err)
	require.NoError(t, repo.MarkConversationDeleted(context.Background(), head))
	assert.True(t, head.MarkedAsDeleted)

	// user1's side of every message is stamped, user2's side untouched
	got1 := reloadMessage(t, msg1.ID)
	require.NotNil(t, got1.SenderDeletedAt)
	assert.Nil(t, got1.RecipientDeletedAt)

	got2 := reloadMessage(t, msg2.ID)
	require.NotNil(t, got2.RecipientDeletedAt)
	assert.Nil(t, got2.SenderDeletedAt)

	outbox, err := repo.OutboxFor(context.Background(), user1)
	require.NoError(t, err)
	assert.Empty(t, outbox)

	inbox, err := repo.InboxFor(context.Background(), user1)
	require.NoError(t, err)
	assert.Empty(t, inbox)

	// user2's mailboxes are unaffected
	inbox2, err := repo.InboxFor(context.Background(), user2)
	require.NoError(t, err)
	assert.Len(t, inbox2, 1)

	outbox2, err := repo.OutboxFor(context.Background(), user2)
	require.NoError(t, err)
	assert.Len(t, outbox2, 1)
}

func Test_MarkConversationDeleted_Idempotent(t *testing.T) {
	cleanupTables(t)
	repo := NewMessageRepository(testDB, logger.Logger{})
	user1, user2 := uuid.New(), uuid.New()

	msg := newTestMessage(user1, user2, "Subject Text")
	require.NoError(t, repo.CreateMessage(context.Background(), msg))

	head, err := repo.GetConversationHead(context.Background(), user1, msg.ConversationID)
	require.NoError(t, err)

	require.NoError(t, repo.MarkConversationDeleted(context.Background(), head))
	first := reloadMessage(t, msg.ID).SenderDeletedAt
	require.NotNil(t, first)

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, repo.MarkConversationDeleted(context.Background(), head))
	second := reloadMessage(t, msg.ID).SenderDeletedAt
	require.NotNil(t, second)
	assert.True(t, first.Equal(*second), "a second delete must not overwrite the first timestamp")
}

func Test_MarkConversationUndeleted_RoundTrip(t *testing.T) {
	cleanupTables(t)
	repo := NewMessageRepository(testDB, logger.Logger{})
	user1, user2 := uuid.New(), uuid.New()

	msg := newTestMessage(user1, user2, "Subject Text")
	require.NoError(t, repo.CreateMessage(context.Background(), msg))

	head, err := repo.GetConversationHead(context.Background(), user2, msg.ConversationID)
	require.NoError(t, err)

	require.NoError(t, repo.MarkConversationDeleted(context.Background(), head))
	inbox, err := repo.InboxFor(context.Background(), user2)
	require.NoError(t, err)
	require.Empty(t, inbox)

	require.NoError(t, repo.MarkConversationUndeleted(context.Background(), head))
	assert.False(t, head.MarkedAsDeleted)

	inbox, err = repo.InboxFor(context.Background(), user2)
	require.NoError(t, err)
	assert.Len(t, inbox, 1, "delete then undelete must restore the original inbox")

	got := reloadMessage(t, msg.ID)
	assert.Nil(t, got.RecipientDeletedAt)
}

func Test_MarkMessageDeleted_StampsActingUsersSideOnly(t *testing.T) {
	cleanupTables(t)
	repo := NewMessageRepository(testDB, logger.Logger{})
	user1, user2 := uuid.New(), uuid.New()

	msg := newTestMessage(user1, user2, "Subject Text")
	require.NoError(t, repo.CreateMessage(context.Background(), msg))

	require.NoError(t, repo.MarkMessageDeleted(context.Background(), msg.ID, user2))
	got := reloadMessage(t, msg.ID)
	require.NotNil(t, got.RecipientDeletedAt)
	assert.Nil(t, got.SenderDeletedAt, "only the acting user's side is trashed")

	inbox, err := repo.InboxFor(context.Background(), user2)
	require.NoError(t, err)
	assert.Empty(t, inbox)

	outbox, err := repo.OutboxFor(context.Background(), user1)
	require.NoError(t, err)
	assert.Len(t, outbox, 1, "sender's outbox survives the recipient's delete")

	trash, err := repo.TrashFor(context.Background(), user2)
	require.NoError(t, err)
	assert.Len(t, trash, 1)
}

func Test_MarkMessageDeleted_Idempotent(t *testing.T) {
	cleanupTables(t)
	repo := NewMessageRepository(testDB, logger.Logger{})
	user1, user2 := uuid.New(), uuid.New()

	msg := newTestMessage(user1, user2, "Subject Text")
	require.NoError(t, repo.CreateMessage(context.Background(), msg))

	require.NoError(t, repo.MarkMessageDeleted(context.Background(), msg.ID, user1))
	first := reloadMessage(t, msg.ID).SenderDeletedAt
	require.NotNil(t, first)

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, repo.MarkMessageDeleted(context.Background(), msg.ID, user1))
	second := reloadMessage(t, msg.ID).SenderDeletedAt
	require.NotNil(t, second)
	assert.True(t, first.Equal(*second), "a second delete must not overwrite the first timestamp")
}

func Test_MarkMessageUndeleted_RoundTrip(t *testing.T) {
	cleanupTables(t)
	repo := NewMessageRepository(testDB, logger.Logger{})
	user1, user2 := uuid.New(), uuid.New()

	msg := newTestMessage(user1, user2, "Subject Text")
	require.NoError(t, repo.CreateMessage(context.Background(), msg))

	require.NoError(t, repo.MarkMessageDeleted(context.Background(), msg.ID, user2))
	inbox, err := repo.InboxFor(context.Background(), user2)
	require.NoError(t, err)
	require.Empty(t, inbox)

	require.NoError(t, repo.MarkMessageUndeleted(context.Background(), msg.ID, user2))
	inbox, err = repo.InboxFor(context.Background(), user2)
	require.NoError(t, err)
	assert.Len(t, inbox, 1, "delete then undelete must restore the message")

	got := reloadMessage(t, msg.ID)
	assert.Nil(t, got.RecipientDeletedAt)
}

func Test_Mailboxes(t *testing.T) {
	cleanupTables(t)
	repo := NewMessageRepository(testDB, logger.Logger{})
	user1, user2 := uuid.New(), uuid.New()
	now := time.Now()

	msg1 := newTestMessage(user1, user2, "Subject Text 1")
	msg1.SenderDeletedAt = &now
	require.NoError(t, repo.CreateMessage(context.Background(), msg1))

	msg2 := newTestMessage(user1, user2, "Subject Text 2")
	msg2.RecipientDeletedAt = &now
	require.NoError(t, repo.CreateMessage(context.Background(), msg2))

	outbox, err := repo.OutboxFor(context.Background(), user1)
	require.NoError(t, err)
	require.Len(t, outbox, 1)
	assert.Equal(t, "Subject Text 2", outbox[0].Subject)

	inbox, err := repo.InboxFor(context.Background(), user2)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, "Subject Text 1", inbox[0].Subject)

	trash1, err := repo.TrashFor(context.Background(), user1)
	require.NoError(t, err)
	require.Len(t, trash1, 1)
	assert.Equal(t, "Subject Text 1", trash1[0].Subject)

	trash2, err := repo.TrashFor(context.Background(), user2)
	require.NoError(t, err)
	require.Len(t, trash2, 1)
	assert.Equal(t, "Subject Text 2", trash2[0].Subject)
}

func Test_MailboxOrdering(t *testing.T) {
	cleanupTables(t)
	repo := NewMessageRepository(testDB, logger.Logger{})
	user1, user2 := uuid.New(), uuid.New()

	older := newTestMessage(user1, user2, "older")
	older.SentAt = time.Now().Add(-time.Hour)
	require.NoError(t, repo.CreateMessage(context.Background(), older))

	newer := newTestMessage(user1, user2, "newer")
	require.NoError(t, repo.CreateMessage(context.Background(), newer))

	inbox, err := repo.InboxFor(context.Background(), user2)
	require.NoError(t, err)
	require.Len(t, inbox, 2)
	assert.Equal(t, "newer", inbox[0].Subject)
	assert.Equal(t, "older", inbox[1].Subject)
}

func Test_InboxCountFor(t *testing.T) {
	cleanupTables(t)
	repo := NewMessageRepository(testDB, logger.Logger{})
	user1, user2 := uuid.New(), uuid.New()

	msg1 := newTestMessage(user1, user2, "Subject Text 1")
	require.NoError(t, repo.CreateMessage(context.Background(), msg1))
	msg2 := newTestMessage(user1, user2, "Subject Text 2")
	require.NoError(t, repo.CreateMessage(context.Background(), msg2))

	count, err := repo.InboxCountFor(context.Background(), user2)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, repo.MarkMessageRead(context.Background(), msg1.ID))
	count, err = repo.InboxCountFor(context.Background(), user2)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// reading is idempotent on the timestamp
	first := reloadMessage(t, msg1.ID).ReadAt
	require.NotNil(t, first)
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, repo.MarkMessageRead(context.Background(), msg1.ID))
	second := reloadMessage(t, msg1.ID).ReadAt
	require.NotNil(t, second)
	assert.True(t, first.Equal(*second))
}

func Test_ConversationHeadsFor(t *testing.T) {
	cleanupTables(t)
	repo := NewMessageRepository(testDB, logger.Logger{})
	user1, user2, user3 := uuid.New(), uuid.New(), uuid.New()

	older := newTestMessage(user1, user2, "older thread")
	older.SentAt = time.Now().Add(-time.Hour)
	require.NoError(t, repo.CreateMessage(context.Background(), older))

	newer := newTestMessage(user3, user1, "newer thread")
	require.NoError(t, repo.CreateMessage(context.Background(), newer))

	heads, err := repo.ConversationHeadsFor(context.Background(), user1)
	require.NoError(t, err)
	require.Len(t, heads, 2)
	assert.Equal(t, "newer thread", heads[0].LatestMessage.Subject)
	assert.Equal(t, "older thread", heads[1].LatestMessage.Subject)

	// trash one thread: it moves from the active list to the trash list
	head, err := repo.GetConversationHead(context.Background(), user1, older.ConversationID)
	require.NoError(t, err)
	require.NoError(t, repo.MarkConversationDeleted(context.Background(), head))

	heads, err = repo.ConversationHeadsFor(context.Background(), user1)
	require.NoError(t, err)
	require.Len(t, heads, 1)
	assert.Equal(t, newer.ConversationID, heads[0].ConversationID)

	trashed, err := repo.ConversationsTrashFor(context.Background(), user1)
	require.NoError(t, err)
	require.Len(t, trashed, 1)
	assert.Equal(t, older.ConversationID, trashed[0].ConversationID)
	assert.True(t, trashed[0].MarkedAsDeleted)
}

func Test_ConversationFor(t *testing.T) {
	cleanupTables(t)
	repo := NewMessageRepository(testDB, logger.Logger{})
	user1, user2 := uuid.New(), uuid.New()

	live := newTestMessage(user1, user2, "live thread")
	require.NoError(t, repo.CreateMessage(context.Background(), live))

	trashed := newTestMessage(user1, user2, "trashed thread")
	require.NoError(t, repo.CreateMessage(context.Background(), trashed))
	head, err := repo.GetConversationHead(context.Background(), user1, trashed.ConversationID)
	require.NoError(t, err)
	require.NoError(t, repo.MarkConversationDeleted(context.Background(), head))

	msgs, err := repo.ConversationFor(context.Background(), user1)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "live thread", msgs[0].Subject)
}

func Test_UsersConversation(t *testing.T) {
	cleanupTables(t)
	repo := NewMessageRepository(testDB, logger.Logger{})
	user1, user2, user3 := uuid.New(), uuid.New(), uuid.New()

	first := newTestMessage(user1, user2, "Subject Text")
	require.NoError(t, repo.CreateMessage(context.Background(), first))

	// fan-out copy to a third user inside the same conversation
	second := newTestMessage(user1, user3, "Subject Text")
	second.ConversationID = first.ConversationID
	require.NoError(t, repo.CreateMessage(context.Background(), second))

	msgs, err := repo.UsersConversation(context.Background(), user2, first.ConversationID)
	require.NoError(t, err)
	require.Len(t, msgs, 1, "user2 only sees the copy addressed to them")
	assert.Equal(t, first.ID, msgs[0].ID)

	msgs, err = repo.UsersConversation(context.Background(), user1, first.ConversationID)
	require.NoError(t, err)
	assert.Len(t, msgs, 2, "the sender sees both copies")
}

func Test_GetMessageByID_LoadsSender(t *testing.T) {
	cleanupTables(t)
	repo := NewMessageRepository(testDB, logger.Logger{})

	sender := userModel.User{Username: "user1", Name: "User One", Email: "user1@example.com"}
	_, err := testDB.NewInsert().Model(&sender).Returning("*").Exec(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() {
		_, err := testDB.ExecContext(context.Background(), `TRUNCATE TABLE users RESTART IDENTITY CASCADE`)
		require.NoError(t, err)
	})

	msg := newTestMessage(sender.ID, uuid.New(), "Subject Text")
	require.NoError(t, repo.CreateMessage(context.Background(), msg))

	got, err := repo.GetMessageByID(context.Background(), msg.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Sender)
	assert.Equal(t, "user1", got.Sender.Username)

	_, err = repo.GetMessageByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrMessageNotFound)
}

func Test_GetConversationHead_NotFound(t *testing.T) {
	cleanupTables(t)
	repo := NewMessageRepository(testDB, logger.Logger{})

	_, err := repo.GetConversationHead(context.Background(), uuid.New(), uuid.New())
	require.ErrorIs(t, err, ErrHeadNotFound)
}

func Test_SyncConversationHeads_ResaveRepoints(t *testing.T) {
	cleanupTables(t)
	repo := NewMessageRepository(testDB, logger.Logger{})
	user1, user2 := uuid.New(), uuid.New()

	msg1 := newTestMessage(user1, user2, "Subject Text 1")
	require.NoError(t, repo.CreateMessage(context.Background(), msg1))
	msg2 := newTestMessage(user1, user2, "Subject Text 2")
	msg2.ParentID = &msg1.ID
	require.NoError(t, repo.CreateMessage(context.Background(), msg2))

	// explicit re-sync against the older message repoints the heads
	require.NoError(t, repo.SyncConversationHeads(context.Background(), msg1))
	heads := headsFor(t, msg1.ConversationID)
	require.Len(t, heads, 2)
	for _, h := range heads {
		assert.Equal(t, msg1.ID, h.LatestMessageID)
	}
}
