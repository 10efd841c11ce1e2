package registrosvc

import (
	"context"
	"fmt"

	basesvc "github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/base/service"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/registro/models"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/common"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UbicacionService xử lý logic ubicacion, kèm join sang reactores.
type UbicacionService struct {
	*basesvc.BaseServiceMongoImpl[models.Ubicacion]
	reactores basesvc.BaseServiceMongo[models.Reactor]
}

// NewUbicacionService tạo UbicacionService mới.
func NewUbicacionService() (*UbicacionService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Ubicaciones)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Ubicaciones, common.ErrNotFound)
	}
	reactorColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Reactores)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Reactores, common.ErrNotFound)
	}
	return &UbicacionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Ubicacion](coll),
		reactores:            basesvc.NewBaseServiceMongo[models.Reactor](reactorColl),
	}, nil
}

// ReactoresEnUbicacion trả về các reactor nằm trong ubicacion id.
// Join theo cặp giá trị (pais, ciudad) của document ubicacion.
func (s *UbicacionService) ReactoresEnUbicacion(ctx context.Context, id primitive.ObjectID) ([]models.Reactor, error) {
	ubicacion, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	filter := bson.M{
		"pais":   ubicacion.NombrePais,
		"ciudad": ubicacion.NombreCiudad,
	}
	return s.reactores.Find(ctx, filter, nil)
}
