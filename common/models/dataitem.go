package models

/**
generic keyed data store behind an entity. Entities keep their scalar state in here so that
whatever the encoding service sends can be applied without a schema.
*/
type DataItem struct {
	id   string
	data map[string]interface{}
}

const dataKeyId = "id"

func (d *DataItem) Initialize(id string, data map[string]interface{}) {
	d.id = id
	d.data = make(map[string]interface{}, len(data))
	for k, v := range data {
		d.data[k] = v
	}
}

func (d *DataItem) GetId() string {
	return d.id
}

func (d *DataItem) SetId(id string) {
	d.id = id
}

func (d *DataItem) Get(key string) interface{} {
	if d.data == nil {
		return nil
	}
	return d.data[key]
}

func (d *DataItem) Set(key string, value interface{}) {
	if d.data == nil {
		d.data = map[string]interface{}{}
	}
	d.data[key] = value
}

/**
merges the given data into the store. An "id" key sets the identifier instead of being stored.
*/
func (d *DataItem) SetData(data map[string]interface{}) {
	for k, v := range data {
		if k == dataKeyId {
			if idString, isString := v.(string); isString && idString != "" {
				d.id = idString
			}
			continue
		}
		d.Set(k, v)
	}
}

/**
returns a copy of the stored data
*/
func (d *DataItem) GetData() map[string]interface{} {
	rtn := make(map[string]interface{}, len(d.data))
	for k, v := range d.data {
		rtn[k] = v
	}
	return rtn
}
