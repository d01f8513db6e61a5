package employee

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Employee is the persisted document. EmployeeID is the business key; the
// store-internal _id never leaves the repository layer.
type Employee struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	EmployeeID  string             `bson:"employee_id"`
	Name        string             `bson:"name"`
	Department  string             `bson:"department"`
	Salary      float64            `bson:"salary"`
	JoiningDate time.Time          `bson:"joining_date"` // calendar date, stored at midnight UTC
	Skills      []string           `bson:"skills"`
}

// EmployeeIndexes enforces employee_id uniqueness at the store level, so a
// create is a single atomic insert rather than a check-then-insert pair.
var EmployeeIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "employee_id", Value: 1}},
		Options: options.Index().SetName("uniq_employee_id").SetUnique(true),
	},
}
