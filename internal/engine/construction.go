package engine

import (
	"energymodel-translator/internal/record"
	"energymodel-translator/internal/target"
)

func opaqueConstruction(b *Build, c *record.OpaqueConstructionAbridged) (target.Object, error) {
	return layeredConstruction(b, c.Name)
}

func windowConstruction(b *Build, c *record.WindowConstructionAbridged) (target.Object, error) {
	return layeredConstruction(b, c.Name)
}

// layeredConstruction stacks the resolved layer materials in declared order.
func layeredConstruction(b *Build, name string) (target.Object, error) {
	layers := b.Refs(record.FieldLayers)
	if len(layers) == 0 {
		return nil, newError(ErrMissingField, b.Record(), record.FieldLayers, nil)
	}

	obj, err := b.Create(target.KindConstruction, name)
	if err != nil {
		return nil, err
	}

	for _, layer := range layers {
		if err := obj.AppendLayer(layer); err != nil {
			return nil, b.targetErr(record.FieldLayers, err)
		}
	}

	return obj, nil
}

func airBoundaryConstruction(b *Build, c *record.AirBoundaryConstructionAbridged) (target.Object, error) {
	obj, err := b.Create(target.KindConstructionAirBoundary, c.Name)
	if err != nil {
		return nil, err
	}

	s := b.Set(obj)
	s.Value(target.AttrAirExchangeMethod, "SimpleMixing")
	s.Number(target.AttrAirMixingFlowPerArea, "air_mixing_per_area", c.AirMixingPerArea)

	if schedule, ok := b.Ref(record.FieldAirMixingSchedule); ok {
		s.Value(target.AttrAirMixingSchedule, schedule)
	}

	return obj, s.Err()
}
