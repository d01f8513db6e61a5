package employee

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionName = "employees"

type Repository interface {
	EnsureIndexes(ctx context.Context) error
	Insert(ctx context.Context, empl *Employee) error
	FindByEmployeeID(ctx context.Context, employeeID string) (*Employee, error)
	UpdateFields(ctx context.Context, employeeID string, fields bson.M) (int64, error)
	Delete(ctx context.Context, employeeID string) (int64, error)
	FindBySkill(ctx context.Context, skill string) ([]Employee, error)
	FindByDepartment(ctx context.Context, department string) ([]Employee, error)
	AverageSalaryByDepartment(ctx context.Context) ([]DepartmentAvgSalary, error)
}

type repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{collection: db.Collection(CollectionName)}
}

func (r *repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, EmployeeIndexes)
	return err
}

func (r *repository) Insert(ctx context.Context, empl *Employee) error {
	_, err := r.collection.InsertOne(ctx, empl)
	return err
}

func (r *repository) FindByEmployeeID(ctx context.Context, employeeID string) (*Employee, error) {
	var empl Employee
	err := r.collection.FindOne(ctx, bson.M{"employee_id": employeeID}).Decode(&empl)
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

// UpdateFields applies a $set with only the supplied fields and reports how
// many documents matched. The caller decides what zero matches means.
func (r *repository) UpdateFields(ctx context.Context, employeeID string, fields bson.M) (int64, error) {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"employee_id": employeeID},
		bson.M{"$set": fields},
	)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *repository) Delete(ctx context.Context, employeeID string) (int64, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"employee_id": employeeID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// FindBySkill matches documents whose skills array contains the given string
// as an element.
func (r *repository) FindBySkill(ctx context.Context, skill string) ([]Employee, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"skills": skill})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var employees []Employee
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

// FindByDepartment returns the department's employees sorted by joining date
// descending. Ties are left in store-native order.
func (r *repository) FindByDepartment(ctx context.Context, department string) ([]Employee, error) {
	opts := options.Find().SetSort(bson.D{{Key: "joining_date", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"department": department}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var employees []Employee
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *repository) AverageSalaryByDepartment(ctx context.Context) ([]DepartmentAvgSalary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$department"},
			{Key: "avg_salary", Value: bson.D{{Key: "$avg", Value: "$salary"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "department", Value: "$_id"},
			{Key: "avg_salary", Value: 1},
			{Key: "_id", Value: 0},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []DepartmentAvgSalary
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
