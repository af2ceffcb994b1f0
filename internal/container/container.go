package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/Rihab-nikh/followUp-Backend/config"
	"github.com/Rihab-nikh/followUp-Backend/internal/domain/repository"
	"github.com/Rihab-nikh/followUp-Backend/internal/interface/middleware"
	"github.com/Rihab-nikh/followUp-Backend/pkg/assistant"
	"github.com/Rihab-nikh/followUp-Backend/pkg/helpers"
)

// app-level container to share constructed components across packages.
// Router modules auto-wire themselves from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	redisClient *redis.Client
	repos       *repository.Repositories
	counters    middleware.CounterStore

	jwtManager *helpers.JWTManager
	completer  assistant.Completer
	rabbitPub  *helpers.RabbitPublisher
)

func SetConfig(c *config.Config)                { cfg = c }
func GetConfig() *config.Config                 { return cfg }
func SetLogger(l *logrus.Logger)                { logger = l }
func GetLogger() *logrus.Logger                 { return logger }
func SetRedis(r *redis.Client)                  { redisClient = r }
func GetRedis() *redis.Client                   { return redisClient }
func SetRepos(r *repository.Repositories)       { repos = r }
func GetRepos() *repository.Repositories        { return repos }
func SetCounters(s middleware.CounterStore)     { counters = s }
func GetCounters() middleware.CounterStore      { return counters }
func SetJWT(m *helpers.JWTManager)              { jwtManager = m }
func GetJWT() *helpers.JWTManager               { return jwtManager }
func SetCompleter(c assistant.Completer)      { completer = c }
func GetCompleter() assistant.Completer       { return completer }
func SetRabbitPub(p *helpers.RabbitPublisher) { rabbitPub = p }
func GetRabbitPub() *helpers.RabbitPublisher  { return rabbitPub }
