// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"database/sql"

	summarystore "github.com/dalemusser/driverdash/internal/app/store/summaries"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds the data source chosen by data_source. Only the fields for
// that source are set; Summaries is always set.
type DBDeps struct {
	DataSource string

	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	SQLite *sql.DB

	Summaries summarystore.Provider
}
