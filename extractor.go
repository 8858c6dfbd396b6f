package dataminer

// Extract returns one record per node matching container, in document order.
// Each field locator is resolved relative to its container; a missing node
// or attribute yields an absent field rather than an error.
func Extract(doc Node, container string, fields []FieldSpec) []Record {
	containers := doc.SelectAll(container)
	records := make([]Record, 0, len(containers))
	for _, c := range containers {
		records = append(records, extractRecord(c, fields))
	}
	return records
}

func extractRecord(container Node, fields []FieldSpec) Record {
	record := make(Record, len(fields))
	for i, spec := range fields {
		record[i] = Field{Name: spec.Name}

		node, ok := container.SelectOne(spec.Locator)
		if !ok {
			continue
		}

		if attr := spec.Attr(); attr == AttrText {
			record[i].Value, record[i].Found = node.Text(), true
		} else {
			record[i].Value, record[i].Found = node.Attr(attr)
		}
	}
	return record
}
