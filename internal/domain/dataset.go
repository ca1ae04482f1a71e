package domain

// RawDataset - всё, что прочитано из источников при старте
type RawDataset struct {
	Vaccination RawTable
	Incidence   RawTable
	Counties    []Feature
	Settlements []Feature
	Country     []Feature
}

// Dataset - подготовленные таблицы, неизменяемые после загрузки
type Dataset struct {
	Vaccination    *MetricTable
	Incidence      *MetricTable
	Geometry       *GeometryTable
	AggregateLabel string
	Options        Options
}
