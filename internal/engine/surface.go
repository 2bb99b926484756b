package engine

import (
	"fmt"

	"energymodel-translator/internal/record"
	"energymodel-translator/internal/target"
)

const autocalculate = "autocalculate"

func face(b *Build, f *record.Face) (target.Object, error) {
	obj, err := b.Create(target.KindSurface, f.Name)
	if err != nil {
		return nil, err
	}

	if err := setBoundary(b, obj, f.Geometry); err != nil {
		return nil, err
	}

	s := b.Set(obj)

	faceType, _, err := b.Text("face_type", f.FaceType)
	if err != nil {
		s.Fail(err)
	} else {
		s.Value(target.AttrSurfaceType, surfaceType(faceType))
	}

	setConstruction(b, s)
	outsideBoundary(b, s, target.KindSurface, &f.BoundaryCondition)

	return obj, s.Err()
}

// surfaceType maps a face type onto the target surface types. Air boundaries
// are walls with an air boundary construction.
func surfaceType(faceType string) string {
	if faceType == "AirBoundary" {
		return "Wall"
	}

	return faceType
}

func aperture(b *Build, a *record.Aperture) (target.Object, error) {
	operable, _, err := b.Flag("is_operable", a.IsOperable)
	if err != nil {
		return nil, err
	}

	kind := "FixedWindow"
	if operable {
		kind = "OperableWindow"
	}

	return subSurface(b, a.Name, kind, a.Geometry, &a.BoundaryCondition)
}

func door(b *Build, d *record.Door) (target.Object, error) {
	glass, _, err := b.Flag("is_glass", d.IsGlass)
	if err != nil {
		return nil, err
	}

	kind := "Door"
	if glass {
		kind = "GlassDoor"
	}

	return subSurface(b, d.Name, kind, d.Geometry, &d.BoundaryCondition)
}

func subSurface(b *Build, name, subSurfaceType string, geometry record.Face3D, bc *record.BoundaryCondition) (target.Object, error) {
	obj, err := b.Create(target.KindSubSurface, name)
	if err != nil {
		return nil, err
	}

	if err := setBoundary(b, obj, geometry); err != nil {
		return nil, err
	}

	if parent, ok := b.Parent(); ok {
		if err := obj.SetParent(parent); err != nil {
			return nil, b.targetErr("", err)
		}
	}

	s := b.Set(obj)
	s.Value(target.AttrSubSurfaceType, subSurfaceType)
	setConstruction(b, s)
	outsideBoundary(b, s, target.KindSubSurface, bc)

	return obj, s.Err()
}

// setBoundary assigns the outer vertex loop. Holes are not modeled.
func setBoundary(b *Build, obj target.Object, geometry record.Face3D) error {
	if len(geometry.Boundary) == 0 {
		return newError(ErrMissingField, b.Record(), "geometry.boundary", nil)
	}

	points := make([]target.Point3D, len(geometry.Boundary))
	for i, p := range geometry.Boundary {
		points[i] = target.Point3D{X: p[0], Y: p[1], Z: p[2]}
	}

	if err := obj.SetVertices(points); err != nil {
		return b.targetErr("geometry.boundary", err)
	}

	return nil
}

func setConstruction(b *Build, s *Setter) {
	if construction, ok := b.Ref(record.FieldConstruction); ok {
		s.Value(target.AttrConstruction, construction)
	}
}

// outsideBoundary applies the boundary condition. Sub-surfaces inherit the
// condition of their base surface and only carry the view factor and the
// adjacent sub-surface.
func outsideBoundary(b *Build, s *Setter, kind target.Kind, bc *record.BoundaryCondition) {
	if bc.Type == "" {
		s.Fail(newError(ErrMissingField, b.Record(), "boundary_condition.type", nil))
		return
	}

	if kind == target.KindSurface {
		s.Value(target.AttrOutsideBoundaryCondition, bc.Type)
	}

	switch bc.Type {
	case record.BoundaryOutdoors:
		if kind == target.KindSurface {
			exposure(b, s, target.AttrSunExposure, "boundary_condition.sun_exposure", bc.SunExposure, "SunExposed", "NoSun")
			exposure(b, s, target.AttrWindExposure, "boundary_condition.wind_exposure", bc.WindExposure, "WindExposed", "NoWind")
		}

		viewFactor(b, s, bc.ViewFactor)
	case record.BoundaryGround, record.BoundaryAdiabatic:
		if kind == target.KindSurface {
			s.Value(target.AttrSunExposure, "NoSun")
			s.Value(target.AttrWindExposure, "NoWind")
		}
	case record.BoundarySurface:
		if kind == target.KindSurface {
			s.Value(target.AttrSunExposure, "NoSun")
			s.Value(target.AttrWindExposure, "NoWind")
		}

		if len(bc.BoundaryConditionObjects) == 0 || bc.BoundaryConditionObjects[0] == "" {
			s.Fail(newError(ErrMissingField, b.Record(), "boundary_condition.boundary_condition_objects", nil))
			return
		}

		s.Value(target.AttrAdjacentSurfaceName, bc.BoundaryConditionObjects[0])
	default:
		s.Fail(newError(ErrValidation, b.Record(), "boundary_condition.type",
			fmt.Errorf("unsupported boundary condition %q", bc.Type)))
	}
}

func exposure(b *Build, s *Setter, attr target.Attr, field string, v *bool, exposed, sheltered string) {
	on, ok, err := b.Flag(field, v)
	if err != nil {
		s.Fail(err)
		return
	}

	if !ok {
		return
	}

	if on {
		s.Value(attr, exposed)
	} else {
		s.Value(attr, sheltered)
	}
}

func viewFactor(b *Build, s *Setter, v *record.Quantity) {
	q, ok, err := b.Quantity("boundary_condition.view_factor", v)
	if err != nil {
		s.Fail(err)
		return
	}

	if !ok {
		return
	}

	if q.IsKeyword(autocalculate) {
		s.Autosize(target.AttrViewFactorToGround)
		return
	}

	n, isNum := q.Float()
	if !isNum {
		s.Fail(newError(ErrValidation, b.Record(), "boundary_condition.view_factor",
			fmt.Errorf("unsupported keyword %q", q.Keyword)))
		return
	}

	s.Value(target.AttrViewFactorToGround, n)
}
