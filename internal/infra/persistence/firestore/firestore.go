// Package firestore stores users, topics and posts in Cloud Firestore using the
// collection layout users/{uid}, topics/{id} and topics/{id}/posts/{postId}.
package firestore

import (
	"context"
	"log/slog"

	"bookclub/config"
	"bookclub/internal/domain/repository"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	usersCollection       = "users"
	topicsCollection      = "topics"
	postsCollection       = "posts"
	credentialsCollection = "credentials"
)

// Params holds dependencies for the Firestore client, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	App    *firebase.App
	Logger *slog.Logger
}

// NewApp initializes the Firebase app shared by Firestore and the identity provider.
func NewApp(cfg *config.Config) (*firebase.App, error) {
	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(context.Background(), &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	return app, nil
}

// New opens a Firestore client from the Firebase app and closes it on shutdown.
func New(params Params) (*firestore.Client, error) {
	client, err := params.App.Firestore(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firestore client")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}

// docAccessor is the subset of document operations shared by plain clients and transactions.
type docAccessor interface {
	get(ctx context.Context, ref *firestore.DocumentRef) (*firestore.DocumentSnapshot, error)
	getAll(ctx context.Context, q firestore.Query) ([]*firestore.DocumentSnapshot, error)
	create(ctx context.Context, ref *firestore.DocumentRef, data any) error
	set(ctx context.Context, ref *firestore.DocumentRef, data any) error
	update(ctx context.Context, ref *firestore.DocumentRef, updates []firestore.Update) error
	delete(ctx context.Context, ref *firestore.DocumentRef) error
}

type clientAccessor struct{}

func (clientAccessor) get(ctx context.Context, ref *firestore.DocumentRef) (*firestore.DocumentSnapshot, error) {
	return ref.Get(ctx)
}

func (clientAccessor) getAll(ctx context.Context, q firestore.Query) ([]*firestore.DocumentSnapshot, error) {
	return q.Documents(ctx).GetAll()
}

func (clientAccessor) create(ctx context.Context, ref *firestore.DocumentRef, data any) error {
	_, err := ref.Create(ctx, data)

	return err
}

func (clientAccessor) set(ctx context.Context, ref *firestore.DocumentRef, data any) error {
	_, err := ref.Set(ctx, data)

	return err
}

func (clientAccessor) update(ctx context.Context, ref *firestore.DocumentRef, updates []firestore.Update) error {
	_, err := ref.Update(ctx, updates)

	return err
}

func (clientAccessor) delete(ctx context.Context, ref *firestore.DocumentRef) error {
	_, err := ref.Delete(ctx, firestore.Exists)

	return err
}

// txAccessor routes operations through a transaction. Writes are buffered until commit,
// so NotFound on update or delete surfaces from Execute.
type txAccessor struct {
	tx *firestore.Transaction
}

func (a txAccessor) get(_ context.Context, ref *firestore.DocumentRef) (*firestore.DocumentSnapshot, error) {
	return a.tx.Get(ref)
}

func (a txAccessor) getAll(_ context.Context, q firestore.Query) ([]*firestore.DocumentSnapshot, error) {
	return a.tx.Documents(q).GetAll()
}

func (a txAccessor) create(_ context.Context, ref *firestore.DocumentRef, data any) error {
	return a.tx.Create(ref, data)
}

func (a txAccessor) set(_ context.Context, ref *firestore.DocumentRef, data any) error {
	return a.tx.Set(ref, data)
}

func (a txAccessor) update(_ context.Context, ref *firestore.DocumentRef, updates []firestore.Update) error {
	return a.tx.Update(ref, updates)
}

func (a txAccessor) delete(_ context.Context, ref *firestore.DocumentRef) error {
	return a.tx.Delete(ref, firestore.Exists)
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func isAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}

// transactionManager implements repository.TransactionManager with Firestore transactions.
type transactionManager struct {
	client *firestore.Client
}

// NewTransactionManager is the constructor for the Firestore transaction manager.
func NewTransactionManager(client *firestore.Client) repository.TransactionManager {
	return &transactionManager{client: client}
}

// Execute runs fn inside RunTransaction, which retries fn on contention.
// fn must perform every read before its first write.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return tm.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		return fn(&repositoryFactory{client: tm.client, acc: txAccessor{tx: tx}})
	})
}

type repositoryFactory struct {
	client *firestore.Client
	acc    docAccessor
}

func (f *repositoryFactory) UserRepo() repository.UserRepository {
	return &userRepository{client: f.client, acc: f.acc}
}

func (f *repositoryFactory) TopicRepo() repository.TopicRepository {
	return &topicRepository{client: f.client, acc: f.acc}
}

func (f *repositoryFactory) PostRepo() repository.PostRepository {
	return &postRepository{client: f.client, acc: f.acc}
}

func (f *repositoryFactory) AuthRepo() repository.AuthRepository {
	return &authRepository{client: f.client, acc: f.acc}
}
