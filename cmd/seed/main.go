package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/Rihab-nikh/followUp-Backend/config"
	"github.com/Rihab-nikh/followUp-Backend/internal/domain/entity"
	"github.com/Rihab-nikh/followUp-Backend/internal/infrastructure/mongodb"
	"github.com/Rihab-nikh/followUp-Backend/pkg/helpers"
)

// Seeds the database with three demo accounts and a small set of meetings,
// tasks, notifications and chat history. Existing documents are left alone;
// re-running just adds another batch, so use a throwaway database.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	client, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoTimeout)
	if err != nil {
		log.Fatalf("mongodb connect: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	db := client.Database(cfg.MongoDatabase())
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("ensure indexes: %v", err)
	}
	repos := mongodb.NewRepositories(db)

	password := "Passw0rd!"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	seedUsers := []*entity.User{
		{
			Email:    "abla.benslimane@example.com",
			FullName: "Abla Benslimane",
			Role:     entity.RoleUser,
		},
		{
			Email:    "wassil.merad@example.com",
			FullName: "Wassil Merad",
			Role:     entity.RoleAdmin,
		},
		{
			Email:    "rihab.nikh@example.com",
			FullName: "Rihab Nikh",
			Role:     entity.RoleUser,
		},
	}

	ids := make([]string, 0, len(seedUsers))
	for _, u := range seedUsers {
		u.Password = hash
		u.AvatarInitials = entity.AvatarInitialsFor(u.FullName)
		u.Preferences = entity.DefaultPreferences()

		if existing, err := repos.Users.GetByEmail(ctx, u.Email); err == nil {
			fmt.Printf("user exists: %s (%s)\n", u.Email, existing.ID)
			ids = append(ids, existing.ID)
			continue
		}
		id, err := repos.Users.Create(ctx, u)
		if err != nil {
			log.Fatalf("seed user %s: %v", u.Email, err)
		}
		fmt.Printf("created user: %s (%s) password=%s\n", u.Email, id, password)
		ids = append(ids, id)
	}

	today := time.Now()
	day := func(offset int) string { return today.AddDate(0, 0, offset).Format("2006-01-02") }

	meetings := []*entity.Meeting{
		{
			UserID:   ids[0],
			Company:  "Client Exemple SARL",
			Contact:  "Jean Dupont",
			Subject:  "Solution walkthrough",
			Date:     day(3),
			Time:     "10:00 AM",
			Duration: 60,
			Location: "Office",
			Status:   entity.MeetingScheduled,
			Priority: entity.PriorityHigh,
			Phone:    "+33 6 12 34 56 78",
			Email:    "jean.dupont@clientexemple.fr",
		},
		{
			UserID:   ids[1],
			Company:  "Axians Industrie",
			Contact:  "Technical Team",
			Subject:  "Project review",
			Date:     day(5),
			Time:     "02:30 PM",
			Duration: 90,
			Location: "HQ",
			Status:   entity.MeetingScheduled,
			Priority: entity.PriorityMedium,
		},
		{
			UserID:   ids[2],
			Company:  "Prospect Tech",
			Contact:  "Sophie Martin",
			Subject:  "Product demo",
			Date:     day(7),
			Time:     "11:00 AM",
			Duration: 45,
			Location: "Virtual Meeting",
			Status:   entity.MeetingScheduled,
			Priority: entity.PriorityLow,
		},
	}
	meetingIDs := make([]string, 0, len(meetings))
	for _, m := range meetings {
		id, err := repos.Meetings.Create(ctx, m)
		if err != nil {
			log.Fatalf("seed meeting: %v", err)
		}
		fmt.Printf("created meeting: %s (%s)\n", m.Subject, id)
		meetingIDs = append(meetingIDs, id)
	}

	tasks := []*entity.Task{
		{
			UserID:    ids[0],
			Title:     "Send commercial proposal",
			MeetingID: meetingIDs[0],
			Assignee:  "Abla Benslimane",
			DueDate:   day(4),
			Priority:  entity.PriorityHigh,
			Status:    entity.TaskTodo,
		},
		{
			UserID:    ids[1],
			Title:     "Prepare meeting minutes",
			MeetingID: meetingIDs[1],
			Assignee:  "Wassil Merad",
			DueDate:   day(6),
			Priority:  entity.PriorityMedium,
			Status:    entity.TaskTodo,
		},
		{
			UserID:    ids[2],
			Title:     "Set up demo environment",
			MeetingID: meetingIDs[2],
			Assignee:  "Rihab Nikh",
			DueDate:   day(6),
			Priority:  entity.PriorityMedium,
			Status:    entity.TaskInProgress,
		},
	}
	for _, t := range tasks {
		id, err := repos.Tasks.Create(ctx, t)
		if err != nil {
			log.Fatalf("seed task: %v", err)
		}
		fmt.Printf("created task: %s (%s)\n", t.Title, id)
		t.ID = id
	}

	notifications := []*entity.Notification{
		entity.MeetingCreated(ids[0], meetings[0]),
		entity.TaskCreated(ids[1], tasks[1]),
	}
	for _, n := range notifications {
		if _, err := repos.Notifications.Create(ctx, n); err != nil {
			log.Fatalf("seed notification: %v", err)
		}
	}
	fmt.Printf("created %d notifications\n", len(notifications))

	chat := &entity.ChatSession{
		UserID:    ids[2],
		SessionID: "default",
		Messages: []entity.ChatMessage{
			{Sender: entity.SenderUser, Text: "Can you summarize my upcoming meetings?", Timestamp: time.Now().UTC()},
			{Sender: entity.SenderAI, Text: "You have a product demo with Prospect Tech in a week.", Timestamp: time.Now().UTC()},
		},
	}
	if err := repos.Chats.Save(ctx, chat); err != nil {
		log.Fatalf("seed chat: %v", err)
	}
	fmt.Println("created chat session: default")

	kpi := &entity.KPIMetric{
		UserID:            ids[0],
		Date:              day(0),
		MeetingsScheduled: 1,
		TasksPending:      1,
	}
	if err := repos.KPIs.Upsert(ctx, kpi); err != nil {
		log.Fatalf("seed kpi: %v", err)
	}
	fmt.Println("seeding complete")
}
