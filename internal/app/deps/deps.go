package deps

import (
	"context"
	"fmt"
	"pushreminder/internal/config"
	dl "pushreminder/internal/core/domain/logging"
	"pushreminder/internal/core/domain/notification"
	drl "pushreminder/internal/core/domain/rate_limiter"
	"pushreminder/internal/core/domain/user"
	dbidentity "pushreminder/internal/db/identity"
	fsidentity "pushreminder/internal/firestore/identity"
	"pushreminder/internal/implementations/logging"
	pushdispatcher "pushreminder/internal/implementations/push_dispatcher"
	ratelimiter "pushreminder/internal/implementations/rate_limiter"
	timerscheduler "pushreminder/internal/implementations/timer_scheduler"
	"sync"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
	"google.golang.org/api/option"
)

type Deps struct {
	Config *config.Config
	Logger dl.Logger

	DB        *pgxpool.Pool
	Firestore *firestore.Client
	Redis     *redis.Client

	Now func() time.Time

	DeliveryIdentityRepository user.DeliveryIdentityRepository
	RateLimiter                drl.RateLimiter
	Dispatcher                 notification.Dispatcher
	ReminderScheduler          *timerscheduler.Scheduler
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()

	closeLogger := deps.initLogger()
	flushSentry := deps.initSentry()

	location := deps.Config.Location()
	deps.Now = func() time.Time { return time.Now().In(location) }

	closeIdentityStore := deps.initIdentityStore()
	closeRedisClient := deps.initRateLimiter()

	deps.Dispatcher = pushdispatcher.New(
		deps.Logger,
		deps.Config.PushServerURL,
		deps.Config.PushRequestTimeout,
	)

	closeReminderScheduler := deps.initReminderScheduler()

	return deps, func() {
		// Timers go first so no reminder fires against closed stores.
		closeReminderScheduler()

		closeFuncs := []func(){
			closeRedisClient,
			closeIdentityStore,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}
		wg.Wait()

		flushSentry()
		closeLogger()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger(deps.Config.IsTestMode)
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initSentry() func() {
	if deps.Config.SentryDsn != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              deps.Config.SentryDsn,
			TracesSampleRate: 0.01,
		})
		if err != nil {
			panic(fmt.Sprintf("could not init Sentry: %v\n", err))
		}
		deps.Logger = logging.NewSentryLogger(deps.Logger, sentry.CurrentHub())
		deps.Logger.Info(context.Background(), "Sentry has been successfully initialized.")
		return func() {
			ok := sentry.Flush(5 * time.Second)
			deps.Logger.Info(context.Background(), "Sentry events flushed.", dl.Entry("ok", ok))
		}
	}

	deps.Logger.Info(context.Background(), "Sentry is disabled.")
	return func() {}
}

func (deps *Deps) initIdentityStore() func() {
	switch deps.Config.IdentityStore {
	case config.IdentityStoreFirestore:
		return deps.initFirestore()
	default:
		return deps.initPgxPool()
	}
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	deps.DeliveryIdentityRepository = dbidentity.NewPgxRepository(db, deps.Now)
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initFirestore() func() {
	ctx := context.Background()
	opts := make([]option.ClientOption, 0, 1)
	if deps.Config.FirestoreCredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(deps.Config.FirestoreCredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: deps.Config.FirestoreProjectID}, opts...)
	if err != nil {
		deps.Logger.Error(ctx, "Could not initialize Firebase app.", dl.Entry("err", err))
		panic(err)
	}
	client, err := app.Firestore(ctx)
	if err != nil {
		deps.Logger.Error(ctx, "Could not connect to Firestore.", dl.Entry("err", err))
		panic(err)
	}
	deps.Firestore = client
	deps.DeliveryIdentityRepository = fsidentity.NewFirestoreRepository(
		client,
		deps.Config.FirestoreUsersCollection,
		deps.Now,
	)
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Firestore client.")
		client.Close()
		deps.Logger.Info(context.Background(), "Firestore client shut down.")
	}
}

func (deps *Deps) initRateLimiter() func() {
	if !deps.Config.RateLimitingEnabled() {
		deps.Logger.Info(context.Background(), "Rate limiting is disabled.")
		deps.RateLimiter = ratelimiter.NewAllowAlways()
		return func() {}
	}

	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	deps.RateLimiter = ratelimiter.NewRedis(redisClient, deps.Logger, deps.Now)
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initReminderScheduler() func() {
	deps.ReminderScheduler = timerscheduler.New(deps.Logger, deps.Now)
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down reminder scheduler.")
		ctx, cancel := context.WithTimeout(context.Background(), deps.Config.ReminderDeliveryTimeout)
		defer cancel()
		if err := deps.ReminderScheduler.Stop(ctx); err != nil {
			deps.Logger.Warning(
				context.Background(),
				"Reminder deliveries are still running.",
				dl.Entry("err", err),
			)
		}
		deps.Logger.Info(context.Background(), "Reminder scheduler shut down.")
	}
}
