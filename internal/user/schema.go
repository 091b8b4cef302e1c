package user

// Schema is the XSD of the user service payloads.
const Schema = `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" xmlns:tns="http://proj.example.com/usuario" targetNamespace="http://proj.example.com/usuario" elementFormDefault="qualified">
  <xs:element name="getUsuarioRequest">
    <xs:complexType>
      <xs:sequence>
        <xs:element name="id" type="xs:long"/>
      </xs:sequence>
    </xs:complexType>
  </xs:element>
  <xs:element name="getUsuarioResponse">
    <xs:complexType>
      <xs:sequence>
        <xs:element name="usuario" type="tns:usuario" minOccurs="0"/>
      </xs:sequence>
    </xs:complexType>
  </xs:element>
  <xs:element name="getAllUsuariosRequest">
    <xs:complexType/>
  </xs:element>
  <xs:element name="getAllUsuariosResponse">
    <xs:complexType>
      <xs:sequence>
        <xs:element name="usuario" type="tns:usuario" minOccurs="0" maxOccurs="unbounded"/>
      </xs:sequence>
    </xs:complexType>
  </xs:element>
  <xs:element name="createUsuarioRequest">
    <xs:complexType>
      <xs:sequence>
        <xs:element name="nome" type="xs:string"/>
        <xs:element name="email" type="xs:string"/>
      </xs:sequence>
    </xs:complexType>
  </xs:element>
  <xs:element name="createUsuarioResponse">
    <xs:complexType>
      <xs:sequence>
        <xs:element name="usuario" type="tns:usuario"/>
      </xs:sequence>
    </xs:complexType>
  </xs:element>
  <xs:complexType name="usuario">
    <xs:sequence>
      <xs:element name="id" type="xs:long"/>
      <xs:element name="nome" type="xs:string"/>
      <xs:element name="email" type="xs:string"/>
    </xs:sequence>
  </xs:complexType>
</xs:schema>`
