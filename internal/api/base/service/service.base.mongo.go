// Package basesvc cung cấp service MongoDB generic cho tất cả các entity.
// Mỗi service bao một *mongo.Collection và thực hiện đúng một thao tác
// storage cho mỗi lời gọi, chuyển đổi lỗi driver qua common.ConvertMongoError.
package basesvc

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/common"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/utility"
)

// UpdateData chứa các thao tác update MongoDB
type UpdateData struct {
	Set      map[string]interface{} `bson:"$set,omitempty"`      // Set và cập nhật giá trị
	Unset    map[string]interface{} `bson:"$unset,omitempty"`    // Xóa field
	Push     map[string]interface{} `bson:"$push,omitempty"`     // Thêm phần tử vào mảng
	AddToSet map[string]interface{} `bson:"$addToSet,omitempty"` // Thêm phần tử vào mảng nếu chưa tồn tại
}

// IsEmpty trả về true nếu không có thao tác update nào
func (u *UpdateData) IsEmpty() bool {
	if u == nil {
		return true
	}
	return len(u.Set) == 0 && len(u.Unset) == 0 && len(u.Push) == 0 && len(u.AddToSet) == 0
}

// ToUpdateData chuyển struct thành UpdateData với thao tác $set
func ToUpdateData(data interface{}) (*UpdateData, error) {
	dataMap, err := utility.ToMap(data)
	if err != nil {
		return nil, err
	}
	return &UpdateData{Set: dataMap}, nil
}

// BaseServiceMongo định nghĩa các thao tác CRUD cơ bản trên một collection.
// Type parameter T là kiểu model của collection.
type BaseServiceMongo[T any] interface {
	InsertOne(ctx context.Context, data T) (T, error)
	FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error)
	FindOneById(ctx context.Context, id primitive.ObjectID) (T, error)
	Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error)
	UpdateById(ctx context.Context, id primitive.ObjectID, data *UpdateData) (T, error)
	FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts *options.FindOneAndUpdateOptions) (T, error)
	DeleteById(ctx context.Context, id primitive.ObjectID) error
	DeleteOne(ctx context.Context, filter interface{}) error
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
	DocumentExists(ctx context.Context, filter interface{}) (bool, error)
}

// BaseServiceMongoImpl là implementation của BaseServiceMongo
type BaseServiceMongoImpl[T any] struct {
	collection *mongo.Collection

	// hasTimestamps cho biết model T có khai báo các trường
	// fecha_creacion / fecha_actualizacion hay không. Chỉ các model
	// khai báo mới được service tự động đóng dấu thời gian.
	hasTimestamps bool
}

// NewBaseServiceMongo tạo service mới cho một collection.
// Việc phát hiện các trường timestamp được thực hiện một lần tại đây
// bằng reflection trên kiểu T.
func NewBaseServiceMongo[T any](collection *mongo.Collection) *BaseServiceMongoImpl[T] {
	return &BaseServiceMongoImpl[T]{
		collection:    collection,
		hasTimestamps: modelDeclaresTimestamps[T](),
	}
}

// Collection trả về collection mà service đang thao tác
func (s *BaseServiceMongoImpl[T]) Collection() *mongo.Collection {
	return s.collection
}

// modelDeclaresTimestamps kiểm tra kiểu T có các bson field
// fecha_creacion và fecha_actualizacion hay không
func modelDeclaresTimestamps[T any]() bool {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		return false
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return false
	}

	hasCreacion := false
	hasActualizacion := false
	for i := 0; i < t.NumField(); i++ {
		bsonTag := strings.Split(t.Field(i).Tag.Get("bson"), ",")[0]
		switch bsonTag {
		case "fecha_creacion":
			hasCreacion = true
		case "fecha_actualizacion":
			hasActualizacion = true
		}
	}
	return hasCreacion && hasActualizacion
}

// normalizeFilter đảm bảo filter không bao giờ nil khi gửi xuống driver
func normalizeFilter(filter interface{}) interface{} {
	if filter == nil {
		return bson.D{}
	}
	if m, ok := filter.(bson.M); ok && len(m) == 0 {
		return bson.D{}
	}
	if m, ok := filter.(map[string]interface{}); ok && len(m) == 0 {
		return bson.D{}
	}
	return filter
}

// InsertOne chèn một document mới vào collection.
// Các field chuỗi rỗng bị loại khỏi payload, timestamp được đóng dấu
// nếu model khai báo, và document được đọc lại theo InsertedID để
// đảm bảo kết quả trả về đúng với những gì đã được lưu.
//
// Parameters:
//   - ctx: Context để hủy thao tác
//   - data: Model cần chèn (field id bị bỏ qua, storage sinh id mới)
//
// Returns:
//   - T: Document đã được lưu, đọc lại từ storage
//   - error: Lỗi đã chuyển đổi qua ConvertMongoError nếu có
func (s *BaseServiceMongoImpl[T]) InsertOne(ctx context.Context, data T) (T, error) {
	var zero T

	dataMap, err := utility.ToMap(data)
	if err != nil {
		return zero, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err)
	}

	// Loại bỏ các field chuỗi rỗng để không ghi đè giá trị mặc định
	for key, value := range dataMap {
		if strValue, ok := value.(string); ok && strValue == "" {
			delete(dataMap, key)
		}
	}

	// Storage sinh id, không nhận id từ payload
	delete(dataMap, "_id")

	if s.hasTimestamps {
		now := utility.NowRFC3339()
		dataMap["fecha_creacion"] = now
		dataMap["fecha_actualizacion"] = now
	}

	result, err := s.collection.InsertOne(ctx, dataMap)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}

	// Đọc lại document vừa chèn theo InsertedID
	var inserted T
	err = s.collection.FindOne(ctx, bson.M{"_id": result.InsertedID}).Decode(&inserted)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return zero, common.ErrNotFound
		}
		return zero, common.ConvertMongoError(err)
	}

	return inserted, nil
}

// FindOne tìm một document theo filter.
// Trả về common.ErrNotFound nếu không có document nào khớp.
func (s *BaseServiceMongoImpl[T]) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error) {
	var result T

	err := s.collection.FindOne(ctx, normalizeFilter(filter), opts).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return result, common.ErrNotFound
		}
		return result, common.ConvertMongoError(err)
	}

	return result, nil
}

// FindOneById tìm một document theo ObjectID
func (s *BaseServiceMongoImpl[T]) FindOneById(ctx context.Context, id primitive.ObjectID) (T, error) {
	return s.FindOne(ctx, bson.M{"_id": id}, nil)
}

// Find tìm tất cả documents khớp với filter.
// Kết quả luôn là slice không nil, rỗng khi không có document nào.
func (s *BaseServiceMongoImpl[T]) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error) {
	cursor, err := s.collection.Find(ctx, normalizeFilter(filter), opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []T
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	if results == nil {
		results = []T{}
	}

	return results, nil
}

// UpdateById cập nhật document theo id với partial merge.
// Nếu UpdateData rỗng thì không có thao tác ghi nào xảy ra và document
// hiện tại được trả về nguyên vẹn. Nếu có merge set, thao tác được thực
// hiện atomic qua FindOneAndUpdate và trả về document sau khi cập nhật.
//
// Parameters:
//   - ctx: Context để hủy thao tác
//   - id: ObjectID của document cần cập nhật
//   - data: Các thao tác update, chỉ các field có mặt mới được ghi
//
// Returns:
//   - T: Document sau khi cập nhật (hoặc hiện tại nếu không có gì để ghi)
//   - error: common.ErrNotFound nếu document không tồn tại
func (s *BaseServiceMongoImpl[T]) UpdateById(ctx context.Context, id primitive.ObjectID, data *UpdateData) (T, error) {
	var zero T

	// Merge set rỗng: không ghi, trả về document hiện tại
	if data.IsEmpty() {
		return s.FindOneById(ctx, id)
	}

	if s.hasTimestamps {
		if data.Set == nil {
			data.Set = map[string]interface{}{}
		}
		data.Set["fecha_actualizacion"] = utility.NowRFC3339()
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated T
	err := s.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, data, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return zero, common.ErrNotFound
		}
		return zero, common.ConvertMongoError(err)
	}

	return updated, nil
}

// FindOneAndUpdate thực hiện find-and-modify atomic với filter tùy ý
func (s *BaseServiceMongoImpl[T]) FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts *options.FindOneAndUpdateOptions) (T, error) {
	var result T

	if opts == nil {
		opts = options.FindOneAndUpdate().SetReturnDocument(options.After)
	}

	err := s.collection.FindOneAndUpdate(ctx, normalizeFilter(filter), update, opts).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return result, common.ErrNotFound
		}
		return result, common.ConvertMongoError(err)
	}

	return result, nil
}

// DeleteById xóa một document theo id.
// Kết quả xóa luôn được xác định trước khi phân nhánh: lỗi driver được
// chuyển đổi và trả về, DeletedCount == 0 trả về common.ErrNotFound.
func (s *BaseServiceMongoImpl[T]) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	return s.DeleteOne(ctx, bson.M{"_id": id})
}

// DeleteOne xóa tối đa một document khớp với filter
func (s *BaseServiceMongoImpl[T]) DeleteOne(ctx context.Context, filter interface{}) error {
	result, err := s.collection.DeleteOne(ctx, normalizeFilter(filter))
	if err != nil {
		return common.ConvertMongoError(err)
	}

	if result.DeletedCount == 0 {
		return common.ErrNotFound
	}

	return nil
}

// CountDocuments đếm số documents khớp với filter
func (s *BaseServiceMongoImpl[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	count, err := s.collection.CountDocuments(ctx, normalizeFilter(filter))
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return count, nil
}

// DocumentExists kiểm tra có document nào khớp với filter không
func (s *BaseServiceMongoImpl[T]) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	count, err := s.collection.CountDocuments(ctx, normalizeFilter(filter), options.Count().SetLimit(1))
	if err != nil {
		return false, common.ConvertMongoError(err)
	}
	return count > 0, nil
}

// GetCollectionFromRegistry lấy collection theo tên từ registry và bọc
// lỗi not-found theo chuẩn chung của các service constructor.
func GetCollectionFromRegistry(get func(string) (*mongo.Collection, bool), name string) (*mongo.Collection, error) {
	coll, exist := get(name)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", name, common.ErrNotFound)
	}
	return coll, nil
}
